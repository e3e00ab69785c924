//go:build windows

package vault

import (
	"fmt"
	"os"
)

// Windows has no syscall.Flock equivalent wired here, so acquireLock and
// tryLock take no lock at all on this platform: neither separate
// processes nor concurrent calls within one process are excluded from
// each other's state reload/save cycle.

// acquireLock opens the vault lock file without taking a cross-process lock.
func acquireLock(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open vault lock file: %w", err)
	}
	return f, nil
}

// tryLock opens the vault lock file without taking a cross-process lock.
func tryLock(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open vault lock file: %w", err)
	}
	return f, nil
}

// releaseLock closes the vault lock file.
func releaseLock(f *os.File) {
	if f == nil {
		return
	}
	_ = f.Close()
}
