package types

// DeviceStatus describes the one door-lock device the server fronts.
type DeviceStatus struct {
	IsOnline     bool   `json:"isOnline"`
	LastSeen     string `json:"lastSeen"`
	ErrorMessage string `json:"errorMessage"`
}

type HealthResponse struct {
	Status       string       `json:"status"`
	Timestamp    string       `json:"timestamp"`
	Uptime       float64      `json:"uptime"`
	Version      string       `json:"version"`
	DeviceStatus DeviceStatus `json:"deviceStatus"`
}

// SummaryResponse is served at the root path.  Error is null while the
// device is online.
type SummaryResponse struct {
	Message      string  `json:"message"`
	Status       string  `json:"status"`
	Timestamp    string  `json:"timestamp"`
	LastActivity string  `json:"lastActivity"`
	Error        *string `json:"error"`
}

// ErrorResponse is the body of 404 and 500 responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
