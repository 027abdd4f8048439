package storage

import (
	"context"

	"github.com/firmdex/firmdex/core"
)

// HistoryRepository provides operations for the search history log.
// Implementations must be safe for concurrent use.
type HistoryRepository interface {
	// SaveSearch prepends a timestamped entry to the history log.
	// When the log is at capacity, the oldest entries are evicted.
	// Identical consecutive entries are not deduplicated.
	SaveSearch(ctx context.Context, entry *core.HistoryEntry) error

	// ListSearches returns history entries most-recent-first, up to limit.
	// A non-positive limit returns every retained entry.
	ListSearches(ctx context.Context, limit int) ([]*core.HistoryEntry, error)

	// Clear removes every history entry.
	Clear(ctx context.Context) error

	// Close closes the repository and releases resources.
	Close() error
}
