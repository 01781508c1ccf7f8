package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncatePath checks that truncation never exceeds the requested width
// and always keeps valid UTF-8.
func FuzzTruncatePath(f *testing.F) {
	seeds := []struct {
		path  string
		width int
	}{
		{"consta", 10},
		{"a-very-long-repository-name", 12},
		{"日本語のリポジトリ", 5},
		{"", 4},
		{"abc", 0},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.width)
	}

	f.Fuzz(func(t *testing.T, path string, width int) {
		if !utf8.ValidString(path) || width > 1<<16 {
			return
		}
		got := TruncatePath(path, width)
		if width > 3 && utf8.RuneCountInString(got) > width {
			t.Errorf("TruncatePath(%q, %d) = %q exceeds width", path, width, got)
		}
		if !utf8.ValidString(got) {
			t.Errorf("TruncatePath(%q, %d) produced invalid UTF-8", path, width)
		}
	})
}
