package service

import (
	"context"
	"errors"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/store"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

var (
	ErrDeviceOffline = errors.New("device offline")
)

type FingerprintService struct {
	devices store.DeviceStore
	notice  string
}

// NewFingerprintService returns a service that rejects submissions with
// notice as the human-readable message.
func NewFingerprintService(devices store.DeviceStore, notice string) *FingerprintService {
	return &FingerprintService{devices: devices, notice: notice}
}

// Submit never records the scan.  This build has no ingestion path, so every
// submission is answered with the offline rejection and ErrDeviceOffline.
// The caller decides whether to log the rejected scan.
func (s *FingerprintService) Submit(ctx context.Context, _ types.FingerprintScan) (types.FingerprintRejection, error) {
	st, err := s.devices.Status(ctx)
	if err != nil {
		return types.FingerprintRejection{}, err
	}

	return types.FingerprintRejection{
		Error:        "Device offline",
		Message:      s.notice,
		LastSeen:     st.LastSeen,
		ErrorDetails: st.ErrorMessage,
	}, ErrDeviceOffline
}
