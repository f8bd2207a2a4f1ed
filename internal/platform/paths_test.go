package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Run("NativeSeparatorBecomesSlash", func(t *testing.T) {
		native := filepath.Join("sub", "deep", "file.txt")
		if got := Normalize(native); got != "sub/deep/file.txt" {
			t.Errorf("Normalize(%q) = %q, want sub/deep/file.txt", native, got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := Normalize(filepath.Join("a", "b.txt"))
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(p)) = %q, want %q", twice, once)
		}
	})

	t.Run("NoOtherRewriting", func(t *testing.T) {
		// Case, dots and spaces must survive untouched
		for _, p := range []string{"MiXeD.TXT", "a..b", " spaced ", "trailing/"} {
			if runtime.GOOS == "windows" && p == "trailing/" {
				continue
			}
			if got := Normalize(p); got != p {
				t.Errorf("Normalize(%q) = %q, want unchanged", p, got)
			}
		}
	})

	t.Run("EmptyPath", func(t *testing.T) {
		if got := Normalize(""); got != "" {
			t.Errorf("Normalize(\"\") = %q, want empty", got)
		}
	})
}

func TestDenormalize(t *testing.T) {
	want := filepath.Join("sub", "deep", "file.txt")
	if got := Denormalize("sub/deep/file.txt"); got != want {
		t.Errorf("Denormalize() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	canonical := "dir/nested/leaf.md"
	if got := Normalize(Denormalize(canonical)); got != canonical {
		t.Errorf("round-trip changed path: %q", got)
	}
}

func TestIsAbsolute(t *testing.T) {
	if IsAbsolute(filepath.Join("relative", "path")) {
		t.Error("IsAbsolute() = true for relative path")
	}
	if runtime.GOOS != "windows" {
		if !IsAbsolute("/tmp/data") {
			t.Error("IsAbsolute(/tmp/data) = false")
		}
	}
}
