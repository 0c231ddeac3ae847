package service

import (
	"context"
	"time"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/store"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

const (
	systemName = "IoT Fingerprint Door Lock System"

	healthOK    = "OK"
	healthError = "ERROR"

	deviceOnline  = "Device Online"
	deviceOffline = "Device Offline"
)

// timestampLayout matches JavaScript's Date.toISOString: UTC with
// millisecond precision and a literal Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t the way every timestamp in the API is formatted.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// StatusConfig holds the parameters for NewStatusService.
type StatusConfig struct {
	// Version is reported by the health endpoint.
	Version string

	// StartedAt is the process start time uptime is measured from.
	// Defaults to the time NewStatusService is called.
	StartedAt time.Time

	// Now defaults to time.Now.
	Now func() time.Time
}

type StatusService struct {
	devices   store.DeviceStore
	version   string
	startedAt time.Time
	now       func() time.Time
}

func NewStatusService(devices store.DeviceStore, cfg StatusConfig) *StatusService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	started := cfg.StartedAt
	if started.IsZero() {
		started = now()
	}
	return &StatusService{
		devices:   devices,
		version:   cfg.Version,
		startedAt: started,
		now:       now,
	}
}

func (s *StatusService) DeviceStatus(ctx context.Context) (types.DeviceStatus, error) {
	return s.devices.Status(ctx)
}

func (s *StatusService) Health(ctx context.Context) (types.HealthResponse, error) {
	st, err := s.devices.Status(ctx)
	if err != nil {
		return types.HealthResponse{}, err
	}

	now := s.now()
	status := healthError
	if st.IsOnline {
		status = healthOK
	}

	return types.HealthResponse{
		Status:       status,
		Timestamp:    Timestamp(now),
		Uptime:       now.Sub(s.startedAt).Seconds(),
		Version:      s.version,
		DeviceStatus: st,
	}, nil
}

func (s *StatusService) Summary(ctx context.Context) (types.SummaryResponse, error) {
	st, err := s.devices.Status(ctx)
	if err != nil {
		return types.SummaryResponse{}, err
	}

	resp := types.SummaryResponse{
		Message:      systemName,
		Status:       deviceOnline,
		Timestamp:    Timestamp(s.now()),
		LastActivity: st.LastSeen,
	}
	if !st.IsOnline {
		resp.Status = deviceOffline
		msg := st.ErrorMessage
		resp.Error = &msg
	}
	return resp, nil
}
