package history

import "errors"

// History domain errors
var (
	ErrSourceUnavailable   = errors.New("history source is unavailable")
	ErrSourceNotConfigured = errors.New("history source is not configured")
)
