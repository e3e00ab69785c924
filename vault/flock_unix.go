//go:build unix

package vault

import (
	"fmt"
	"os"
	"syscall"
)

// acquireLock takes the exclusive, blocking flock on the vault's lock
// file at path. Every mutating vault operation (put, remove, move,
// copy, mkdir) holds this lock for the duration of its read-modify-write
// cycle over nodes.json and the content store, so a second process
// touching the same vault directory queues behind the first rather than
// racing it.
func acquireLock(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open vault lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("acquire vault lock: %w", err)
	}
	return f, nil
}

// tryLock attempts the same exclusive lock as acquireLock without
// blocking, returning an error immediately if another process already
// holds it.
func tryLock(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open vault lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("vault is locked by another process: %w", err)
	}
	return f, nil
}

// releaseLock drops the flock and closes the descriptor. Safe to call
// with a nil file, so defer sites don't need a guard.
func releaseLock(f *os.File) {
	if f == nil {
		return
	}
	_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	_ = f.Close()
}
