// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package cache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const quoteKeyPrefix = "quote:"

// ErrStoreClosed is returned by DiskStore operations after Close.
var ErrStoreClosed = errors.New("price store is closed")

// DiskStore persists cache entries in BadgerDB so live quotes survive a
// restart. Each record carries a badger TTL matching the entry's expiry, so
// the store never hands back a quote the cache would reject anyway.
type DiskStore struct {
	mu     sync.RWMutex
	db     *badger.DB
	closed bool
}

// OpenDiskStore opens (or creates) a BadgerDB database at path. An empty
// path opens an in-memory database.
func OpenDiskStore(path string) (*DiskStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open price store: %w", err)
	}
	return &DiskStore{db: db}, nil
}

func storeKey(k Key) []byte {
	return []byte(quoteKeyPrefix + k.String())
}

// Save writes e with a TTL equal to its remaining lifetime. Entries that
// have already expired are not written.
func (s *DiskStore) Save(e Entry) error {
	ttl := time.Until(e.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(storeKey(e.Key), data).WithTTL(ttl))
	})
}

// Delete removes the record for key. Missing keys are not an error.
func (s *DiskStore) Delete(key Key) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(storeKey(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete entry: %w", err)
		}
		return nil
	})
}

// Load returns every unexpired record. Records that fail to decode are
// skipped.
func (s *DiskStore) Load() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	var entries []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(quoteKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var e Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				continue
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan price store: %w", err)
	}
	return entries, nil
}

// RunGC reclaims value log space until badger reports nothing left to
// rewrite.
func (s *DiskStore) RunGC(discardRatio float64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// Close closes the underlying database. It is safe to call more than once.
func (s *DiskStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
