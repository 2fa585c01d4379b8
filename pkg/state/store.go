package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Store reads and writes the session record under an advisory exclusive
// file lock. Every mutation is one lock scope: acquire, read, modify, bump
// version, write, release. The acquire blocks until the OS grants the lock;
// there is no timeout or retry policy.
type Store struct {
	path string
}

// NewStore returns a store for the state file next to the given plugin
// directory.
func NewStore(pluginPath string) *Store {
	return &Store{path: filepath.Join(pluginPath, ".agentgate-state.yaml")}
}

// Path returns the state file location.
func (st *Store) Path() string { return st.path }

// Init creates the state file. It fails when one already exists; a session
// is initialized exactly once.
func (st *Store) Init(s *SessionState) error {
	if _, err := os.Stat(st.path); err == nil {
		return fmt.Errorf("state file already exists: %s", st.path)
	}
	lock := flock.New(st.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire state lock: %w", err)
	}
	defer lock.Unlock()
	return st.write(s)
}

// Read loads the current record under the lock.
func (st *Store) Read() (*SessionState, error) {
	lock := flock.New(st.path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire state lock: %w", err)
	}
	defer lock.Unlock()
	return st.read()
}

// Update runs one read-modify-write cycle. The mutation fn sees the current
// record; on success the version is bumped and the record written back. The
// updated record is returned.
func (st *Store) Update(fn func(*SessionState) error) (*SessionState, error) {
	lock := flock.New(st.path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire state lock: %w", err)
	}
	defer lock.Unlock()

	s, err := st.read()
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.Version++
	if err := st.write(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Lock marks the record as held by an agent. Fails when another holder is
// recorded; this is the application-level claim, distinct from the file
// lock guarding the write itself.
func (st *Store) Lock(holder string) (*SessionState, error) {
	if holder == "" {
		holder = "unknown"
	}
	return st.Update(func(s *SessionState) error {
		if s.LockHolder != "" {
			return fmt.Errorf("lock already held by: %s", s.LockHolder)
		}
		s.LockHolder = holder
		return nil
	})
}

// Unlock clears the recorded holder. Unlocking an unheld record is not an
// error.
func (st *Store) Unlock() (*SessionState, string, error) {
	var previous string
	s, err := st.Update(func(s *SessionState) error {
		previous = s.LockHolder
		s.LockHolder = ""
		return nil
	})
	return s, previous, err
}

func (st *Store) read() (*SessionState, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var s SessionState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return &s, nil
}

func (st *Store) write(s *SessionState) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
