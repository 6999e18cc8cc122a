// Package backup keeps a one-deep safety copy of the storage file, taken
// before each whole-file rewrite.
package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Suffix is appended to the storage path to form the snapshot path.
const Suffix = ".bak"

// Snapshot copies path to path+Suffix, replacing any previous snapshot.
// A missing source file is a no-op.
func Snapshot(path string) error {
	src, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	dst, err := os.Create(path + Suffix)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copying to snapshot: %w", err)
	}
	return dst.Close()
}
