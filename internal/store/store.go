package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/astrogator/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketSettings = []byte("settings")
)

// Setting keys
const (
	keySortState   = "sort"
	keyGeometry    = "geometry"
	keyPreferences = "preferences"
)

// SettingsStore implements domain.SettingsStore using BoltDB.
type SettingsStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewSettingsStore opens (or creates) the settings database at path.
// An empty path keeps settings in memory only.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &SettingsStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSettings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings bucket: %w", err)
	}

	return &SettingsStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *SettingsStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *SettingsStore) get(key string, dest interface{}) error {
	// Check memory cache first
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		if s.db == nil {
			return domain.ErrSettingNotFound
		}

		err := s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketSettings)
			if b == nil {
				return nil
			}
			if v := b.Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if data == nil {
			return domain.ErrSettingNotFound
		}

		// Promote to memory cache
		s.mu.Lock()
		s.cache[key] = data
		s.mu.Unlock()
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *SettingsStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSettings)
		return b.Put([]byte(key), data)
	})
}

// === Sort ===

func (s *SettingsStore) GetSortState() (domain.SortState, error) {
	var state domain.SortState
	err := s.get(keySortState, &state)
	return state, err
}

func (s *SettingsStore) SaveSortState(state domain.SortState) error {
	return s.set(keySortState, state)
}

// === Window geometry ===

func (s *SettingsStore) GetWindowGeometry() (domain.WindowGeometry, error) {
	var g domain.WindowGeometry
	err := s.get(keyGeometry, &g)
	return g, err
}

func (s *SettingsStore) SaveWindowGeometry(geometry domain.WindowGeometry) error {
	return s.set(keyGeometry, geometry)
}

// === Preferences ===

func (s *SettingsStore) GetPreferences() (domain.Preferences, error) {
	var p domain.Preferences
	err := s.get(keyPreferences, &p)
	return p, err
}

func (s *SettingsStore) SavePreferences(prefs domain.Preferences) error {
	return s.set(keyPreferences, prefs)
}

// Reset wipes every persisted setting
func (s *SettingsStore) Reset() error {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketSettings); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketSettings)
		return err
	})
}

var _ domain.SettingsStore = (*SettingsStore)(nil)
