package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path; empty means stderr
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
}

// FileLogger implements Logger with line-oriented output to a file or stderr.
type FileLogger struct {
	config FileLoggerConfig
	file   *os.File
	writer io.Writer
	mu     *sync.Mutex
	fields Fields
}

// NewFileLogger creates a new file logger. When config.Path is empty, log
// lines go to stderr.
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	l := &FileLogger{config: config, mu: &sync.Mutex{}, writer: os.Stderr}

	if config.Path != "" {
		dir := filepath.Dir(config.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = file
		l.writer = file
	}

	return l, nil
}

// Debug logs a debug message
func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	if l.config.Level <= DebugLevel {
		l.log(DebugLevel, msg, nil, fields)
	}
}

// Info logs an info message
func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	if l.config.Level <= InfoLevel {
		l.log(InfoLevel, msg, nil, fields)
	}
}

// Warn logs a warning message
func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	if l.config.Level <= WarnLevel {
		l.log(WarnLevel, msg, nil, fields)
	}
}

// Error logs an error message
func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	if l.config.Level <= ErrorLevel {
		l.log(ErrorLevel, msg, err, fields)
	}
}

// WithFields returns a logger with additional fields. The underlying file and
// mutex are shared with the parent.
func (l *FileLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &FileLogger{
		config: l.config,
		file:   l.file,
		writer: l.writer,
		mu:     l.mu,
		fields: merged,
	}
}

// Close flushes and closes the logger
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// log writes a single log line
func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	allFields := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		allFields[k] = v
	}
	for k, v := range fields {
		allFields[k] = v
	}

	var line []byte
	if l.config.Format == FormatJSON {
		entry := map[string]interface{}{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"level":     LevelString(level),
			"message":   msg,
		}
		if err != nil {
			entry["error"] = err.Error()
		}
		for k, v := range allFields {
			entry[k] = v
		}
		data, jsonErr := json.Marshal(entry)
		if jsonErr != nil {
			return
		}
		line = append(data, '\n')
	} else {
		text := fmt.Sprintf("%s [%s] %s",
			time.Now().UTC().Format("2006-01-02T15:04:05.000Z"), LevelString(level), msg)
		if err != nil {
			text += fmt.Sprintf(" error=%q", err.Error())
		}
		for k, v := range allFields {
			text += fmt.Sprintf(" %s=%v", k, v)
		}
		line = []byte(text + "\n")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(line)
}
