package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ScratchTree is the uniquely named temporary directory that owns the raw
// extraction output for one run. It must be removed on every exit path;
// Remove is idempotent so it can be both deferred and hooked to signals.
type ScratchTree struct {
	dir  string
	once sync.Once
}

// NewScratchTree creates a fresh scratch directory
func NewScratchTree() (*ScratchTree, error) {
	dir, err := os.MkdirTemp("", "gogdos-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	return &ScratchTree{dir: dir}, nil
}

// Dir returns the scratch root
func (s *ScratchTree) Dir() string {
	return s.dir
}

// Join returns a path inside the scratch tree
func (s *ScratchTree) Join(elem ...string) string {
	return filepath.Join(append([]string{s.dir}, elem...)...)
}

// Remove deletes the scratch tree recursively. Safe to call more than once.
func (s *ScratchTree) Remove() error {
	var err error
	s.once.Do(func() {
		err = os.RemoveAll(s.dir)
	})
	return err
}
