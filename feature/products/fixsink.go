package products

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Sink persists an accumulated fix script and returns the resulting path.
type Sink interface {
	Persist(kind, content string) (string, error)
}

// DirSink writes fix scripts as <kind>_fix_<timestamp>.js files into Dir,
// creating the directory as needed.
type DirSink struct {
	Dir string
	// now is swappable for tests; nil means time.Now.
	now func() time.Time
}

// NewDirSink creates a sink rooted at dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Characters outside this set are unsafe on at least one target filesystem.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9_.-] with '_'.
func SanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// Persist writes content to a fresh fix file and returns its path. A name
// collision within the same second gets a numeric suffix so concurrent
// writers never overwrite each other.
func (s *DirSink) Persist(kind, content string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create fix directory: %w", err)
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	ts := now().Format("20060102_150405")
	base := SanitizeFilename(fmt.Sprintf("%s_fix_%s", kind, ts))

	path := filepath.Join(s.Dir, base+".js")
	for n := 1; ; n++ {
		// O_EXCL makes creation atomic, a taken name moves to the next
		// suffix instead of truncating the existing file.
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			if _, err := f.Write([]byte(content)); err != nil {
				f.Close()
				return "", fmt.Errorf("failed to write fix file: %w", err)
			}
			if err := f.Close(); err != nil {
				return "", fmt.Errorf("failed to write fix file: %w", err)
			}
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to write fix file: %w", err)
		}
		path = filepath.Join(s.Dir, fmt.Sprintf("%s_%d.js", base, n))
	}
}
