package memory

import (
	"context"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// AccessLogStore is a read-only, in-memory access log.  The entries are
// copied in at construction and never written afterwards, so reads need no
// locking.
type AccessLogStore struct {
	entries []types.LogEntry
}

func NewAccessLogStore(entries []types.LogEntry) *AccessLogStore {
	cp := make([]types.LogEntry, len(entries))
	copy(cp, entries)
	return &AccessLogStore{entries: cp}
}

// ListEntries returns a copy of all entries, oldest first.
func (s *AccessLogStore) ListEntries(_ context.Context) ([]types.LogEntry, error) {
	out := make([]types.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
