package storage

import (
	"fmt"
	"os"
)

// withFileLock runs fn while holding an exclusive lock on path, so two
// processes opening the same store cannot interleave schema migrations
func withFileLock(path string, fn func() error) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer unlockFile(file)

	return fn()
}
