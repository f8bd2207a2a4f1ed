// Package ratelimit provides token-bucket read throttling, used to cap the
// aggregate disk throughput of concurrent fingerprint workers.
package ratelimit

import (
	"context"
	"io"
	"sync"
	"time"
)

// minBurst keeps the bucket large enough for smooth reads at low rates.
const minBurst = 64 * 1024

// Limiter controls the rate of data transfer across any number of readers
// sharing it.
type Limiter struct {
	rate  int64 // bytes per second
	burst int64 // maximum tokens

	mu     sync.Mutex
	tokens int64     // available tokens (bytes)
	last   time.Time // last refill time
}

// NewLimiter creates a limiter for the given bytes-per-second rate. A rate of
// zero or less means no limiting and returns nil, which every consumer treats
// as "unlimited".
func NewLimiter(bytesPerSecond int64) *Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}

	burst := bytesPerSecond
	if burst < minBurst {
		burst = minBurst
	}

	return &Limiter{
		rate:   bytesPerSecond,
		burst:  burst,
		tokens: burst, // start with a full bucket
		last:   time.Now(),
	}
}

// wait blocks until n tokens are available.
func (l *Limiter) wait(n int64) {
	for {
		l.mu.Lock()
		l.refill()
		if l.tokens >= n {
			l.mu.Unlock()
			return
		}
		deficit := n - l.tokens
		l.mu.Unlock()

		sleep := time.Duration(float64(deficit) / float64(l.rate) * float64(time.Second))
		if sleep < time.Millisecond {
			sleep = time.Millisecond
		}
		time.Sleep(sleep)
	}
}

// refill adds tokens for the elapsed time. Callers must hold mu.
func (l *Limiter) refill() {
	now := time.Now()
	earned := int64(float64(now.Sub(l.last)) / float64(time.Second) * float64(l.rate))
	if earned <= 0 {
		return
	}
	l.tokens += earned
	if l.tokens > l.burst {
		l.tokens = l.burst
	}
	l.last = now
}

// consume removes tokens after a completed read.
func (l *Limiter) consume(n int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens -= n
	if l.tokens < 0 {
		l.tokens = 0
	}
}

// Reader wraps an io.Reader with bandwidth limiting.
type Reader struct {
	reader  io.Reader
	limiter *Limiter
	ctx     context.Context
}

// NewReader wraps an io.Reader with rate limiting. A nil limiter returns the
// reader unchanged.
func NewReader(ctx context.Context, reader io.Reader, limiter *Limiter) io.Reader {
	if limiter == nil {
		return reader
	}
	return &Reader{reader: reader, limiter: limiter, ctx: ctx}
}

// Read implements io.Reader, waiting for bucket tokens before each read.
func (r *Reader) Read(p []byte) (int, error) {
	select {
	case <-r.ctx.Done():
		return 0, r.ctx.Err()
	default:
	}

	want := int64(len(p))
	if want > r.limiter.burst {
		want = r.limiter.burst
	}
	r.limiter.wait(want)

	n, err := r.reader.Read(p[:want])
	if n > 0 {
		r.limiter.consume(int64(n))
	}
	return n, err
}

// ReadCloser wraps an io.ReadCloser with rate limiting.
type ReadCloser struct {
	Reader
	closer io.Closer
}

// NewReadCloser wraps an io.ReadCloser with rate limiting. A nil limiter
// returns the reader unchanged.
func NewReadCloser(ctx context.Context, rc io.ReadCloser, limiter *Limiter) io.ReadCloser {
	if limiter == nil {
		return rc
	}
	return &ReadCloser{
		Reader: Reader{reader: rc, limiter: limiter, ctx: ctx},
		closer: rc,
	}
}

// Close implements io.Closer
func (rc *ReadCloser) Close() error {
	return rc.closer.Close()
}
