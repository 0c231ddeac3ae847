package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/store"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// reportedErrors is the error figure shown on the Nov 10 dashboard.  It is a
// fixed value, not a count over the entries.
const reportedErrors = 1

type AccessLogService struct {
	logs    store.AccessLogStore
	devices store.DeviceStore
}

func NewAccessLogService(logs store.AccessLogStore, devices store.DeviceStore) *AccessLogService {
	return &AccessLogService{logs: logs, devices: devices}
}

// Logs returns every entry, most recent first.
func (s *AccessLogService) Logs(ctx context.Context) (types.LogsResponse, error) {
	entries, err := s.logs.ListEntries(ctx)
	if err != nil {
		return types.LogsResponse{}, fmt.Errorf("list entries: %w", err)
	}
	st, err := s.devices.Status(ctx)
	if err != nil {
		return types.LogsResponse{}, fmt.Errorf("device status: %w", err)
	}

	// ListEntries hands back a copy, so reversing in place is safe.
	slices.Reverse(entries)

	return types.LogsResponse{
		Logs:         entries,
		Total:        len(entries),
		DeviceStatus: st,
	}, nil
}

func (s *AccessLogService) Stats(ctx context.Context) (types.StatsResponse, error) {
	entries, err := s.logs.ListEntries(ctx)
	if err != nil {
		return types.StatsResponse{}, fmt.Errorf("list entries: %w", err)
	}
	st, err := s.devices.Status(ctx)
	if err != nil {
		return types.StatsResponse{}, fmt.Errorf("device status: %w", err)
	}

	return types.StatsResponse{
		Nov10: types.DayStats{
			Authorized:   countAccess(entries, types.AccessAuthorized),
			Unauthorized: countAccess(entries, types.AccessUnauthorized),
			Total:        len(entries),
			Errors:       reportedErrors,
		},
		DeviceStatus: st,
		LastActivity: st.LastSeen,
	}, nil
}

func countAccess(entries []types.LogEntry, at types.AccessType) int {
	n := 0
	for _, e := range entries {
		if e.AccessType == at {
			n++
		}
	}
	return n
}
