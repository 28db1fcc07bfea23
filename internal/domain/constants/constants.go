package constants

import "time"

// Cart and snapshot lifetimes
const (
	// DefaultCartTTL - idle carts are evicted after this long
	DefaultCartTTL = 2 * time.Hour

	// DefaultSnapshotTTL - how long a fetched catalog snapshot stays fresh
	DefaultSnapshotTTL = 5 * time.Minute
)

// Transport limits
const (
	// DefaultHTTPTimeout for calls to the data service
	DefaultHTTPTimeout = 15 * time.Second

	// MaxTelegramMessage - Telegram hard limit per message
	MaxTelegramMessage = 4096

	// MaxDiagnosticLen - backend failure diagnostics are truncated to this
	MaxDiagnosticLen = 3500
)
