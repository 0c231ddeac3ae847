package types

import (
	"fmt"
	"strconv"
)

// AccessType classifies a single fingerprint scan.
type AccessType string

const (
	AccessAuthorized   AccessType = "authorized"
	AccessUnauthorized AccessType = "unauthorized"
	AccessError        AccessType = "error"
)

// NoFingerMatch is the FingerID reported when the sensor found no enrolled
// template.  Confidence is always 0 alongside it.
const NoFingerMatch = -1

// LogEntry is one recorded scan.  Entries are created once at startup and
// never mutated; field order matches the JSON wire order.
type LogEntry struct {
	ID         int        `json:"id"`
	Timestamp  string     `json:"timestamp"`
	AccessType AccessType `json:"accessType"`
	FingerID   int        `json:"fingerID"`
	Confidence int        `json:"confidence"`
	DeviceID   string     `json:"deviceID"`
	Location   string     `json:"location"`
}

// Matched reports whether the scan matched an enrolled fingerprint.
func (e LogEntry) Matched() bool {
	return e.FingerID != NoFingerMatch
}

// FingerprintScan is what a device would post to /api/fingerprint.  The
// server decodes it best-effort so rejected submissions can be logged.
type FingerprintScan struct {
	FingerID   *int   `json:"fingerID,omitempty"`
	Confidence *int   `json:"confidence,omitempty"`
	AccessType string `json:"accessType,omitempty"`
	DeviceID   string `json:"deviceID,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// String renders the scan for log lines.  Missing fields print as "-".
func (s FingerprintScan) String() string {
	return fmt.Sprintf("device=%s finger=%s confidence=%s",
		orDash(s.DeviceID), intOrDash(s.FingerID), intOrDash(s.Confidence))
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

type FingerprintRejection struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	LastSeen     string `json:"lastSeen"`
	ErrorDetails string `json:"errorDetails"`
}

type LogsResponse struct {
	Logs         []LogEntry   `json:"logs"`
	Total        int          `json:"total"`
	DeviceStatus DeviceStatus `json:"deviceStatus"`
}

// DayStats is the per-day access breakdown.  Errors is reported as-is from
// the stats service and is not derived from the entries.
type DayStats struct {
	Authorized   int `json:"authorized"`
	Unauthorized int `json:"unauthorized"`
	Total        int `json:"total"`
	Errors       int `json:"errors"`
}

type StatsResponse struct {
	Nov10        DayStats     `json:"nov10"`
	DeviceStatus DeviceStatus `json:"deviceStatus"`
	LastActivity string       `json:"lastActivity"`
}
