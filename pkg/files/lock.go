package files

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ProjectLock guards a project directory against a second concurrent
// editor session. The core itself is single-threaded; the lock only
// prevents two processes from interleaving writes to the same files.
type ProjectLock struct {
	fl *flock.Flock
}

// AcquireProjectLock takes the exclusive project lock without blocking.
// A held lock means another storybeat session owns this project.
func AcquireProjectLock() (*ProjectLock, error) {
	fl := flock.New(filepath.Join(StorybeatDir, ".lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("project is open in another storybeat session")
	}
	return &ProjectLock{fl: fl}, nil
}

// Release gives the lock back. Safe to call once at session end.
func (l *ProjectLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
