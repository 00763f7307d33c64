package quotegen

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Exporter].
	ErrClosed = errors.New("quotegen: exporter is closed")

	// ErrExportInFlight is returned when an export is requested while a
	// previous one is still running. Exports are single-flight; callers
	// that want the drop-silently behavior of the original editor can
	// ignore this sentinel.
	ErrExportInFlight = errors.New("quotegen: export already in flight")
)
