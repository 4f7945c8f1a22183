package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Collection keys. Each key maps to a single flat JSON array on disk that is
// always read and rewritten as a whole.
const (
	KeyReservations  = "reservations"
	KeyRequests      = "rental_requests"
	KeyAdminVehicles = "admin_vehicles"
	KeyOverrides     = "fleet_overrides"
	KeyLeads         = "leads"
	KeyVisits        = "visits"
	KeyAdmins        = "admins"
	KeyRefreshTokens = "refresh_tokens"
)

// Store persists each collection as <dir>/<key>.json. A missing or corrupt
// file reads back as an empty collection; availability and workflow queries
// degrade to "nothing stored" rather than failing.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Read unmarshals the collection under key into v (a pointer to a slice).
// Missing files and malformed content both leave v untouched and return nil;
// this is the only corruption-recovery path in the system.
func (s *Store) Read(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(key, v)
}

// Write replaces the whole collection under key.
func (s *Store) Write(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(key, v)
}

// Update applies fn to the collection under key and writes the result back,
// holding the store lock for the whole read-modify-write.
func (s *Store) Update(key string, v interface{}, fn func() (interface{}, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readLocked(key, v); err != nil {
		return err
	}
	out, err := fn()
	if err != nil {
		return err
	}
	return s.writeLocked(key, out)
}

func (s *Store) readLocked(key string, v interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		log.WithError(err).WithField("key", key).Warn("Could not read collection, treating as empty")
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.WithError(err).WithField("key", key).Warn("Malformed collection, treating as empty")
		return nil
	}
	return nil
}

func (s *Store) writeLocked(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
