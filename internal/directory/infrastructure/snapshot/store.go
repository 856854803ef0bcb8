// Package snapshot persists the whole directory as a versioned JSON
// file. Save overwrites the file; Load replaces in-memory state
// wholesale. There is no incremental log.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	directory "utility-billing/internal/directory/domain"
)

// FormatVersion is the snapshot envelope version this build writes.
const FormatVersion = 1

// ErrUnsupportedVersion is returned when a snapshot was written by an
// incompatible format version.
var ErrUnsupportedVersion = errors.New("snapshot: unsupported format version")

type envelope struct {
	Version    int                   `json:"version"`
	SavedAt    time.Time             `json:"saved_at"`
	NextBillID int                   `json:"next_bill_id"`
	Customers  []*directory.Customer `json:"customers"`
}

// Store reads and writes directory snapshots at a fixed path.
type Store struct {
	path string
}

// NewStore constructs a store.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("snapshot store: empty path")
	}
	return &Store{path: path}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot. The second return value is false when no
// snapshot file exists yet.
func (s *Store) Load() (directory.State, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return directory.State{}, false, nil
		}
		return directory.State{}, false, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return directory.State{}, false, fmt.Errorf("snapshot: decode %s: %w", s.path, err)
	}
	if env.Version != FormatVersion {
		return directory.State{}, false, ErrUnsupportedVersion
	}
	return directory.State{Customers: env.Customers, NextBillID: env.NextBillID}, true, nil
}

// Save writes the snapshot, overwriting any previous one. The write
// goes through a temp file and rename so a failed write never corrupts
// the last good snapshot.
func (s *Store) Save(state directory.State) error {
	env := envelope{
		Version:    FormatVersion,
		SavedAt:    time.Now().UTC(),
		NextBillID: state.NextBillID,
		Customers:  state.Customers,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path)
}
