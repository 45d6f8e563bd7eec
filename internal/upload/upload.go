// Package upload stages local media files for submission: unique names,
// per-kind extension allow-lists, and size-capped cleanup of the staging
// directory.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// kindExtensions maps a media kind to its accepted file extensions.
var kindExtensions = map[string][]string{
	"image": {"png", "jpg", "jpeg", "webp"},
	"video": {"mp4", "mov", "avi", "wmv"},
	"audio": {"mp3", "wav", "m4a", "aac", "ogg", "wma"},
}

// Kinds returns the supported media kinds.
func Kinds() []string {
	kinds := make([]string, 0, len(kindExtensions))
	for k := range kindExtensions {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Allowed reports whether ext (without dot) is accepted for kind.
func Allowed(kind, ext string) bool {
	for _, e := range kindExtensions[kind] {
		if e == strings.ToLower(ext) {
			return true
		}
	}
	return false
}

// Stage copies src into dir under a unique {kind}_{uuid}.{ext} name and
// returns the staged path. The source's extension must be on the kind's
// allow-list.
func Stage(src, dir, kind string) (string, error) {
	if _, ok := kindExtensions[kind]; !ok {
		return "", fmt.Errorf("unknown media kind %q (valid: %v)", kind, Kinds())
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(src), "."))
	if !Allowed(kind, ext) {
		return "", fmt.Errorf("unsupported %s file extension %q (valid: %v)", kind, ext, kindExtensions[kind])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	dst := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", kind, uuid.NewString(), ext))
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating staged file: %w", err)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}
	return nil
}

// DirSize returns the total size in bytes of regular files under dir.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if os.IsNotExist(err) {
		return 0, nil
	}
	return total, err
}

// CleanupOldest deletes the oldest files in dir until its total size is at
// most maxBytes.
func CleanupOldest(dir string, maxBytes int64) error {
	total, err := DirSize(dir)
	if err != nil {
		return err
	}
	if total <= maxBytes {
		return nil
	}

	type entry struct {
		path string
		info os.FileInfo
	}
	var files []entry
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, entry{path, info})
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].info.ModTime().Before(files[j].info.ModTime())
	})

	for _, f := range files {
		if total <= maxBytes {
			break
		}
		if err := os.Remove(f.path); err != nil {
			return fmt.Errorf("removing %s: %w", f.path, err)
		}
		total -= f.info.Size()
	}
	return nil
}
