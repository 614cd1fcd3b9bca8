// Package lockedfile provides a file-based mutex used to serialize access to
// the local toolchain prefix across cfgen processes.
package lockedfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Mutex is an advisory file lock at a fixed path.
type Mutex struct {
	path string
}

// MutexAt returns a Mutex for the file at the given path. The file and its
// parent directory are created on first Lock.
func MutexAt(path string) *Mutex {
	return &Mutex{path: path}
}

// Lock acquires the lock, blocking until it is available, and returns a
// function releasing it.
func (m *Mutex) Lock() (unlock func(), err error) {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(m.path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return nil, err
	}
	if err := lock(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", m.path, err)
	}
	return func() {
		unlockFile(f)
		f.Close()
	}, nil
}
