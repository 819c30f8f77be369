// Package prefs implements the preference store on top of bbolt.
package prefs

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.etcd.io/bbolt"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PreferenceStore = (*Store)(nil)

// rootBucket holds one nested bucket per preference key.
const rootBucket = "prefs"

// openTimeout bounds how long Open waits for another process holding the file lock.
const openTimeout = time.Second

// Store implements ports.PreferenceStore using a BoltDB file.
// Each key is a nested bucket whose items are indexed by big-endian position,
// so cursor order is list order.
type Store struct {
	mu sync.Mutex
	db *bbolt.DB
}

// Open opens the store at path, creating the file and its directory if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.ErrStorePathRequired
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", cleanPath)
	}

	db, err := bbolt.Open(cleanPath, domain.PrivateFilePerm, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cleanPath)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rootBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cleanPath)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// LoadList returns the list stored under key, or an empty list if there is none.
func (s *Store) LoadList(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, zerr.With(bbolt.ErrDatabaseNotOpen, "key", key)
	}

	values := []string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		list := tx.Bucket([]byte(rootBucket)).Bucket([]byte(key))
		if list == nil {
			return nil
		}
		return list.ForEach(func(_, v []byte) error {
			values = append(values, string(v))
			return nil
		})
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}

	return values, nil
}

// SaveList replaces the list stored under key.
func (s *Store) SaveList(key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return zerr.With(bbolt.ErrDatabaseNotOpen, "key", key)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket([]byte(rootBucket))
		if err := deleteList(root, key); err != nil {
			return err
		}

		list, err := root.CreateBucket([]byte(key))
		if err != nil {
			return err
		}
		for i, v := range values {
			if err := list.Put(indexKey(i), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	return nil
}

// Clear removes the list stored under key. A missing key is not an error.
func (s *Store) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return zerr.With(bbolt.ErrDatabaseNotOpen, "key", key)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return deleteList(tx.Bucket([]byte(rootBucket)), key)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	return nil
}

func deleteList(root *bbolt.Bucket, key string) error {
	err := root.DeleteBucket([]byte(key))
	if err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
		return err
	}
	return nil
}

func indexKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i)) //nolint:gosec // i is a non-negative slice index
	return key
}
