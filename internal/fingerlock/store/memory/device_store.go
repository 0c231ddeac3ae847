package memory

import (
	"context"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// DeviceStore holds the status of the single door-lock device.  It is set
// once at startup; this build has no path that updates it.
type DeviceStore struct {
	status types.DeviceStatus
}

func NewDeviceStore(status types.DeviceStatus) *DeviceStore {
	return &DeviceStore{status: status}
}

func (s *DeviceStore) Status(_ context.Context) (types.DeviceStatus, error) {
	return s.status, nil
}
