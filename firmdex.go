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


package firmdex

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/firmdex/firmdex/core"
	"github.com/firmdex/firmdex/index"
	"github.com/firmdex/firmdex/search"
	"github.com/firmdex/firmdex/storage"
	"github.com/firmdex/firmdex/storage/badger"
	"github.com/firmdex/firmdex/suggest"
)

// Directory bundles the index, searcher, suggester and history recorder for
// one company snapshot. It is the injection point for all shared state: no
// package in this module keeps global mutable singletons, so independent
// Directories never interfere and a snapshot swap is an explicit operation.
type Directory struct {
	mu        sync.RWMutex
	index     *index.Index
	searcher  *search.Searcher
	suggester *suggest.Generator

	history        storage.HistoryRepository
	historyBackend *badger.Backend // non-nil when the history store is owned
	pool           *ants.Pool
	logger         *slog.Logger
	cacheSize      int
	suggestOpts    []suggest.Option
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	historyPath     string
	history         storage.HistoryRepository
	historyCapacity int
	cacheSize       int
	poolSize        int
	logger          *slog.Logger
	suggestOpts     []suggest.Option
}

// WithHistoryPath opens a badger-backed history store at the given
// directory. The store is owned by the Directory and closed with it.
func WithHistoryPath(path string) DirectoryOption {
	return func(o *directoryOptions) {
		o.historyPath = path
	}
}

// WithHistory records searches in a caller-provided repository.
// The repository is not closed by the Directory.
func WithHistory(history storage.HistoryRepository) DirectoryOption {
	return func(o *directoryOptions) {
		o.history = history
	}
}

// WithHistoryCapacity sets the retained history length for a store opened
// via WithHistoryPath. Default is 50.
func WithHistoryCapacity(capacity int) DirectoryOption {
	return func(o *directoryOptions) {
		o.historyCapacity = capacity
	}
}

// WithCacheSize bounds the per-snapshot result cache. Default is 256.
func WithCacheSize(size int) DirectoryOption {
	return func(o *directoryOptions) {
		o.cacheSize = size
	}
}

// WithPoolSize sets the worker pool size used for index builds.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) DirectoryOption {
	return func(o *directoryOptions) {
		o.poolSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DirectoryOption {
	return func(o *directoryOptions) {
		o.logger = logger
	}
}

// WithLocationSuggestions includes location tokens in autocomplete.
func WithLocationSuggestions() DirectoryOption {
	return func(o *directoryOptions) {
		o.suggestOpts = append(o.suggestOpts, suggest.WithLocations())
	}
}

// NewDirectory builds a directory over a company snapshot.
func NewDirectory(companies []core.Company, opts ...DirectoryOption) (*Directory, error) {
	options := &directoryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	poolSize := options.poolSize
	if poolSize < 1 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	d := &Directory{
		history:     options.history,
		pool:        pool,
		logger:      logger,
		cacheSize:   options.cacheSize,
		suggestOpts: options.suggestOpts,
	}

	if options.historyPath != "" && d.history == nil {
		backend, err := badger.OpenBackend(options.historyPath, false)
		if err != nil {
			pool.Release()
			return nil, err
		}
		var histOpts []badger.HistoryOption
		if options.historyCapacity > 0 {
			histOpts = append(histOpts, badger.WithCapacity(options.historyCapacity))
		}
		history, err := badger.NewHistoryRepository(backend, histOpts...)
		if err != nil {
			backend.Close()
			pool.Release()
			return nil, err
		}
		d.history = history
		d.historyBackend = backend
	}

	if err := d.rebuild(companies); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

// rebuild constructs the index, searcher and suggester for a snapshot.
// Callers hold no lock; rebuild takes the write lock for the swap.
func (d *Directory) rebuild(companies []core.Company) error {
	ix := index.New(companies, index.WithPool(d.pool))

	searchOpts := []search.Option{search.WithLogger(d.logger)}
	if d.history != nil {
		searchOpts = append(searchOpts, search.WithHistory(d.history))
	}
	if d.cacheSize > 0 {
		searchOpts = append(searchOpts, search.WithCacheSize(d.cacheSize))
	}
	searcher, err := search.NewSearcher(ix, searchOpts...)
	if err != nil {
		return err
	}

	suggester, err := suggest.NewGenerator(ix, d.suggestOpts...)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.index = ix
	d.searcher = searcher
	d.suggester = suggester
	d.mu.Unlock()
	return nil
}

// SetCompanies replaces the snapshot: the index is rebuilt and the previous
// result cache is discarded, so stale results cannot be served.
func (d *Directory) SetCompanies(companies []core.Company) error {
	return d.rebuild(companies)
}

// Snapshot returns the hash of the current company snapshot.
func (d *Directory) Snapshot() core.SnapshotHash {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index.Hash()
}

// Companies returns the current snapshot. Callers must treat it as
// read-only.
func (d *Directory) Companies() []core.Company {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index.Companies()
}

// Search runs a query against the current snapshot.
func (d *Directory) Search(ctx context.Context, params core.SearchParams) ([]core.Company, error) {
	d.mu.RLock()
	searcher := d.searcher
	d.mu.RUnlock()
	return searcher.Search(ctx, params)
}

// SearchScored runs a query and exposes accumulated match scores.
func (d *Directory) SearchScored(ctx context.Context, params core.SearchParams) ([]core.SearchResult, error) {
	d.mu.RLock()
	searcher := d.searcher
	d.mu.RUnlock()
	return searcher.SearchScored(ctx, params)
}

// Suggest returns up to limit autocomplete terms for partial input.
func (d *Directory) Suggest(input string, limit int) []string {
	d.mu.RLock()
	suggester := d.suggester
	d.mu.RUnlock()
	return suggester.Suggest(input, limit)
}

// History returns recorded searches most-recent-first, up to limit.
// Without a configured history store it returns nothing.
func (d *Directory) History(ctx context.Context, limit int) ([]*core.HistoryEntry, error) {
	if d.history == nil {
		return nil, nil
	}
	return d.history.ListSearches(ctx, limit)
}

// ClearHistory removes every recorded search.
func (d *Directory) ClearHistory(ctx context.Context) error {
	if d.history == nil {
		return nil
	}
	return d.history.Clear(ctx)
}

// Close releases the worker pool and any owned history store.
func (d *Directory) Close() error {
	d.pool.Release()

	if d.historyBackend == nil {
		return nil
	}
	if err := d.history.Close(); err != nil {
		d.logger.Error("error closing history repository", "err", err)
	}
	if err := d.historyBackend.Close(); err != nil {
		d.logger.Error("error closing history backend", "err", err)
		return err
	}
	return nil
}
