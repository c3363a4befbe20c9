// Package local manages the account snapshots the dashboard is served from.
package local

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/hypecli/hype-cli/internal/cloud/hype"

	"github.com/spf13/afero"
)

// set of snapshot filenames
const (
	FileProfile   = "profile.json"
	FileBalance   = "balance.json"
	FileCard      = "card.json"
	FileMovements = "movements.json"
)

// Store reads and writes account snapshots in a local directory
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore creates a new snapshot store rooted at the provided directory
func NewStore(dir string) *Store {
	return &Store{fs: afero.NewOsFs(), dir: dir}
}

// NewStoreWithFs creates a new snapshot store backed by the provided filesystem
func NewStoreWithFs(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the snapshot directory
func (s *Store) Dir() string {
	return s.dir
}

// WriteProfile writes the profile snapshot
func (s *Store) WriteProfile(profile hype.Profile) error {
	return s.write(FileProfile, profile)
}

// WriteBalance writes the balance snapshot
func (s *Store) WriteBalance(balance hype.Balance) error {
	return s.write(FileBalance, balance)
}

// WriteCard writes the card snapshot
func (s *Store) WriteCard(card hype.Card) error {
	return s.write(FileCard, card)
}

// WriteMovements writes the movements snapshot
func (s *Store) WriteMovements(movements hype.Movements) error {
	return s.write(FileMovements, movements)
}

// Profile reads the profile snapshot
func (s *Store) Profile() (hype.Profile, error) {
	var profile hype.Profile
	if err := s.read(FileProfile, &profile); err != nil {
		return hype.Profile{}, err
	}
	return profile, nil
}

// Balance reads the balance snapshot
func (s *Store) Balance() (hype.Balance, error) {
	var balance hype.Balance
	if err := s.read(FileBalance, &balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// Card reads the card snapshot
func (s *Store) Card() (hype.Card, error) {
	var card hype.Card
	if err := s.read(FileCard, &card); err != nil {
		return nil, err
	}
	return card, nil
}

// Movements reads the movements snapshot
func (s *Store) Movements() (hype.Movements, error) {
	var movements hype.Movements
	if err := s.read(FileMovements, &movements); err != nil {
		return hype.Movements{}, err
	}
	return movements, nil
}

// HasProfile returns whether a profile snapshot exists
func (s *Store) HasProfile() bool {
	exists, err := afero.Exists(s.fs, s.path(FileProfile))
	return err == nil && exists
}

func (s *Store) write(name string, data interface{}) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	contents, contentsErr := json.MarshalIndent(data, "", "  ")
	if contentsErr != nil {
		return contentsErr
	}

	if err := afero.WriteFile(s.fs, s.path(name), contents, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	return nil
}

func (s *Store) read(name string, out interface{}) error {
	contents, contentsErr := afero.ReadFile(s.fs, s.path(name))
	if contentsErr != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", name, contentsErr)
	}
	return json.Unmarshal(contents, out)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
