package brandgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBasePrefix is the stem shared by every generated batch name.
const DefaultBasePrefix = "gemini_image"

// FormatBaseName renders the base name for sequence number n, zero-padded to four digits.
func FormatBaseName(prefix string, n int) string {
	return fmt.Sprintf("%s_%04d", prefix, n)
}

// NextBaseName returns the lowest-numbered {prefix}_{NNNN} for which no
// {prefix}_{NNNN}_*.png file exists in dir. A missing dir counts as empty.
//
// An empty dir is the current directory, the same place Persist writes to
// for it. The scan and the later write are not atomic; callers must be the
// only writer for dir.
func NextBaseName(dir, prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultBasePrefix
	}
	if dir == "" {
		dir = "."
	}

	names, err := listNames(dir)
	if err != nil {
		return "", err
	}

	for n := 1; ; n++ {
		candidate := FormatBaseName(prefix, n)
		if !batchExists(names, candidate) {
			return candidate, nil
		}
	}
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan output directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// batchExists reports whether any name matches the glob {base}_*.png.
func batchExists(names []string, base string) bool {
	pattern := escapeGlob(base) + "_*.png"
	for _, name := range names {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)
	return r.Replace(s)
}
