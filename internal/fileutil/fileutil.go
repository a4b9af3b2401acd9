// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrOverlap      = errors.New("source and destination overlap")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "C:\sites\blog.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- generated site pages are public
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// CopyFile copies the regular file src to dst, keeping its permission bits.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- caller-provided path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) // #nosec G304 -- caller-provided path
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// MirrorDir replaces dst with a copy of the regular files under src,
// preserving relative paths. Entries for which skip returns true are left
// out; skip receives slash-separated paths relative to src and may be nil.
// Returns the number of copied files.
func MirrorDir(src, dst string, skip func(rel string) bool) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}
	if err := checkOverlap(src, dst); err != nil {
		return 0, err
	}

	if err := os.RemoveAll(dst); err != nil {
		return 0, fmt.Errorf("removing %s: %w", dst, err)
	}
	if err := os.MkdirAll(dst, 0o750); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	count := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if skip != nil && skip(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o750)
		case d.Type().IsRegular():
			if err := CopyFile(path, target); err != nil {
				return fmt.Errorf("copying %s: %w", rel, err)
			}
			count++
		}
		return nil
	})
	return count, err
}

// ResetDir removes dir and recreates it empty. It refuses to touch a dir
// that overlaps any of the protected directories.
func ResetDir(dir string, protected ...string) error {
	for _, p := range protected {
		if p == "" {
			continue
		}
		if err := checkOverlap(p, dir); err != nil {
			return err
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// checkOverlap rejects a destination equal to, inside, or containing src,
// since the destination is removed before copying.
func checkOverlap(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if isWithin(absSrc, absDst) || isWithin(absDst, absSrc) {
		return fmt.Errorf("%w: %s and %s", ErrOverlap, src, dst)
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
