// Package dataset holds the canned door-lock data the demo server exposes.
//
// Nothing here is read from a device.  The records describe the last day the
// ESP32 lock was reachable (10 Nov 2025) and are loaded once at startup.
package dataset

import (
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

const (
	DeviceID = "ESP32_DOOR_001"
	Location = "Front Door"
)

// Dataset is the immutable input to the stores.  Callers must treat the
// Logs slice as read-only.
type Dataset struct {
	Logs   []types.LogEntry
	Status types.DeviceStatus

	// OfflineNotice is returned to devices that try to submit scans.
	OfflineNotice string
}

// Nov10 returns a fresh copy of the demo dataset.
func Nov10() Dataset {
	return Dataset{
		Logs: []types.LogEntry{
			scan(1, "2025-11-10T08:15:23.000Z", types.AccessAuthorized, 1, 95),
			scan(2, "2025-11-10T09:32:45.000Z", types.AccessAuthorized, 3, 88),
			scan(3, "2025-11-10T11:45:12.000Z", types.AccessUnauthorized, types.NoFingerMatch, 0),
			scan(4, "2025-11-10T14:22:18.000Z", types.AccessAuthorized, 2, 92),
			scan(5, "2025-11-10T16:33:07.000Z", types.AccessUnauthorized, types.NoFingerMatch, 0),
			scan(6, "2025-11-10T18:45:33.000Z", types.AccessUnauthorized, types.NoFingerMatch, 0),
			scan(7, "2025-11-10T19:12:55.000Z", types.AccessError, types.NoFingerMatch, 0),
		},
		Status: types.DeviceStatus{
			IsOnline:     false,
			LastSeen:     "2025-11-10T19:12:55.000Z",
			ErrorMessage: "Device connection lost - WiFi timeout after multiple unauthorized attempts",
		},
		OfflineNotice: "Door lock device has been offline since November 10, 2025",
	}
}

func scan(id int, ts string, at types.AccessType, fingerID, confidence int) types.LogEntry {
	return types.LogEntry{
		ID:         id,
		Timestamp:  ts,
		AccessType: at,
		FingerID:   fingerID,
		Confidence: confidence,
		DeviceID:   DeviceID,
		Location:   Location,
	}
}
