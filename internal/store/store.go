// Package store persists the style table as a JSON file and notifies
// subscribers when rows change.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"styleboard/internal/style"
)

// Event describes one committed mutation of the table.
type Event struct {
	Revision uint64   `json:"revision"`
	Names    []string `json:"names"`
}

// Store is a file-backed style table. The zero value is not usable; call Open.
type Store struct {
	mu       sync.RWMutex
	path     string
	presets  []style.Preset
	revision uint64
	subs     map[chan Event]struct{}
}

// Open loads the table from path, seeding it with the five literal presets
// when the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, subs: map[chan Event]struct{}{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.presets = style.List()
		if err := s.writeLocked(); err != nil {
			return nil, fmt.Errorf("seed style table: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []style.Preset
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse style table %s: %w", path, err)
	}
	for _, row := range rows {
		if err := style.Validate(row); err != nil {
			return nil, fmt.Errorf("style table %s row %q: %w", path, row.Name, err)
		}
	}
	s.presets = rows
	return s, nil
}

// Get returns the preset with the given name.
func (s *Store) Get(name string) (style.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.presets {
		if p.Name == name {
			return p, nil
		}
	}
	return style.Preset{}, style.ErrPresetNotFound
}

// List returns a snapshot of all rows in table order.
func (s *Store) List() []style.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]style.Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Revision returns the number of committed mutations since Open.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Put inserts or replaces a row, keyed by preset name.
func (s *Store) Put(p style.Preset) error {
	if err := style.Validate(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i, row := range s.presets {
		if row.Name == p.Name {
			s.presets[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.presets = append(s.presets, p)
	}

	if err := s.writeLocked(); err != nil {
		return err
	}
	s.commitLocked()
	return nil
}

// Delete removes a row by name. Deleting an unknown name fails with
// style.ErrPresetNotFound.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.presets {
		if row.Name == name {
			s.presets = append(s.presets[:i], s.presets[i+1:]...)
			if err := s.writeLocked(); err != nil {
				return err
			}
			s.commitLocked()
			return nil
		}
	}
	return style.ErrPresetNotFound
}

// Reset discards all rows and restores the five seeded presets.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.presets = style.List()
	if err := s.writeLocked(); err != nil {
		return err
	}
	s.commitLocked()
	return nil
}

// Subscribe registers a change listener. The returned cancel func must be
// called when the listener goes away. Slow listeners drop events rather than
// blocking mutations.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) commitLocked() {
	s.revision++
	event := Event{Revision: s.revision, Names: make([]string, 0, len(s.presets))}
	for _, row := range s.presets {
		event.Names = append(event.Names, row.Name)
	}
	for ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

func (s *Store) writeLocked() error {
	data, err := json.MarshalIndent(s.presets, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".styles-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Chmod(0o600); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
