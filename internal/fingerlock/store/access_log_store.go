package store

import (
	"context"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// AccessLogStore exposes the recorded scans in creation order (oldest
// first).  Implementations must return a slice the caller may modify.
type AccessLogStore interface {
	ListEntries(ctx context.Context) ([]types.LogEntry, error)
}
