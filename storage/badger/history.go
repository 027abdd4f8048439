// Copyright 2026 Firmdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"bytes"
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/firmdex/firmdex/core"
	"github.com/firmdex/firmdex/storage"
)

// defaultHistoryCapacity caps the retained search history.
const defaultHistoryCapacity = 50

// HistoryRepository implements storage.HistoryRepository for BadgerDB.
// Entries are stored under reverse-timestamp keys, so forward iteration is
// most-recent-first and capping can drop the tail of the iteration.
type HistoryRepository struct {
	backend  *Backend
	seq      *badger.Sequence
	capacity int
}

var _ storage.HistoryRepository = (*HistoryRepository)(nil)

// HistoryOption configures a HistoryRepository.
type HistoryOption func(*HistoryRepository) error

// WithCapacity sets how many history entries are retained.
// Default is 50.
func WithCapacity(capacity int) HistoryOption {
	return func(r *HistoryRepository) error {
		if capacity <= 0 {
			return storage.ErrInvalidCapacity
		}
		r.capacity = capacity
		return nil
	}
}

// NewHistoryRepository creates a HistoryRepository on a backend.
func NewHistoryRepository(backend *Backend, opts ...HistoryOption) (*HistoryRepository, error) {
	seq, err := backend.GetSequence(historySeq)
	if err != nil {
		return nil, err
	}

	r := &HistoryRepository{
		backend:  backend,
		seq:      seq,
		capacity: defaultHistoryCapacity,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			seq.Release()
			return nil, err
		}
	}

	return r, nil
}

// SaveSearch prepends a timestamped entry and evicts entries beyond the
// capacity. Consecutive duplicates are kept; the log is append-only.
func (r *HistoryRepository) SaveSearch(ctx context.Context, entry *core.HistoryEntry) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	value, err := storage.MarshalHistoryEntry(entry)
	if err != nil {
		return err
	}

	seq, err := r.seq.Next()
	if err != nil {
		return err
	}
	key := makeHistoryKey(entry.Timestamp, seq)

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(key, value); err != nil {
			return err
		}
		if err := r.evictBeyondCapacity(tx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// evictBeyondCapacity walks the history newest-first inside tx and deletes
// everything past the retention cap.
func (r *HistoryRepository) evictBeyondCapacity(tx *badger.Txn) error {
	prefix := []byte(historyPrefix + ":")

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	count := 0
	var stale [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		count++
		if count > r.capacity {
			stale = append(stale, iter.Item().KeyCopy(nil))
		}
	}

	for _, key := range stale {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// ListSearches returns history entries most-recent-first, up to limit.
// A non-positive limit returns every retained entry.
func (r *HistoryRepository) ListSearches(ctx context.Context, limit int) ([]*core.HistoryEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if limit <= 0 || limit > r.capacity {
		limit = r.capacity
	}

	var results []*core.HistoryEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(historyPrefix + ":")

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid() && len(results) < limit; iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}

			err := iter.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalHistoryEntry(val)
				if err != nil {
					return err
				}
				results = append(results, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	return results, err
}

// Clear removes every history entry.
func (r *HistoryRepository) Clear(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(historyPrefix + ":")

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Close releases the sequence. The backend is owned by the caller and is
// not closed here.
func (r *HistoryRepository) Close() error {
	return r.seq.Release()
}
