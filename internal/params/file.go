package params

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
	"github.com/flowline-labs/nodekit/internal/logger"
)

// Ensure FileStore implements the interface.
var _ driven.ParameterStore = (*FileStore)(nil)

// ErrStoreClosed indicates the file store has been closed.
var ErrStoreClosed = errors.New("params: store closed")

// fileDocument is the TOML shape of a parameter file: one [[items]] table
// per workflow input item.
type fileDocument struct {
	Items []map[string]any `toml:"items"`
}

// FileStore serves parameters from a TOML file. Optionally watches the file
// and reloads item snapshots when it changes, so long-running hosts pick up
// edits without a restart.
type FileStore struct {
	path string

	mu     sync.RWMutex
	items  []map[string]any
	closed bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileStore loads a parameter file and returns a store over its items.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the parameter file, replacing all item snapshots.
func (s *FileStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read parameter file: %w", err)
	}

	var doc fileDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse parameter file: %w", err)
	}

	s.mu.Lock()
	s.items = doc.Items
	s.mu.Unlock()
	return nil
}

// Watch starts watching the parameter file and reloads it on change.
// Reload failures are logged and the previous snapshots are kept.
func (s *FileStore) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch parameter file: %w", err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watchLoop(watcher, s.done)
	return nil
}

// watchLoop processes file events until the store is closed.
func (s *FileStore) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := s.Reload(); err != nil {
				logger.Errorf("reload parameter file %s: %v", s.path, err)
			} else {
				logger.Debugf("reloaded parameter file %s", s.path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf("watch parameter file %s: %v", s.path, err)
		}
	}
}

// GetParameter returns the raw parameter value for an item index.
func (s *FileStore) GetParameter(name string, itemIndex int) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if itemIndex < 0 || itemIndex >= len(s.items) {
		return nil, fmt.Errorf("%w: %q (item %d out of range)", domain.ErrParameterNotFound, name, itemIndex)
	}
	val, ok := s.items[itemIndex][name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (item %d)", domain.ErrParameterNotFound, name, itemIndex)
	}
	return val, nil
}

// Items returns the number of item snapshots currently loaded.
func (s *FileStore) Items() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close stops watching and releases resources.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.watcher != nil {
		close(s.done)
		return s.watcher.Close()
	}
	return nil
}
