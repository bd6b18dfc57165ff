package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2/maybe"
)

// writeFileAtomic replaces path with data so that readers see either the old
// or the new contents, never a partial file. Windows falls back to a plain write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	if err := maybe.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}
