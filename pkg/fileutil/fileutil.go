// Package fileutil reads and fully rewrites small project files.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/macropower/fwver/pkg/fwerrors"
)

// DefaultPerm is used when writing a file that does not exist yet.
const DefaultPerm fs.FileMode = 0o644

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths are provided by the operator.
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", fwerrors.ErrReadFile, path, err)
	}

	return data, nil
}

// WriteFile replaces the contents of the file at path, keeping its existing
// permissions.
func WriteFile(path string, data []byte) error {
	perm := DefaultPerm

	fi, err := os.Stat(path)
	if err == nil {
		perm = fi.Mode().Perm()
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("%w %q: %w", fwerrors.ErrWriteFile, path, err)
	}

	return nil
}
