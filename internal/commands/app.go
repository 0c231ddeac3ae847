// Package commands implements the CLI for the fingerprint door-lock demo server.
package commands

import (
	"time"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/dataset"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/service"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/store/memory"
)

// app is the wired dependency graph shared by every command.
type app struct {
	data         dataset.Dataset
	status       *service.StatusService
	accessLogs   *service.AccessLogService
	fingerprints *service.FingerprintService
}

func newApp(version string, startedAt time.Time) *app {
	ds := dataset.Nov10()

	// Stores (memory only; the dataset is fixed at startup)
	logStore := memory.NewAccessLogStore(ds.Logs)
	deviceStore := memory.NewDeviceStore(ds.Status)

	return &app{
		data: ds,
		status: service.NewStatusService(deviceStore, service.StatusConfig{
			Version:   version,
			StartedAt: startedAt,
		}),
		accessLogs:   service.NewAccessLogService(logStore, deviceStore),
		fingerprints: service.NewFingerprintService(deviceStore, ds.OfflineNotice),
	}
}
