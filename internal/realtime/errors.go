package realtime

import "errors"

var (
	// ErrHubClosed is returned by Subscribe after the hub was closed.
	ErrHubClosed = errors.New("realtime hub is closed")

	// ErrPublishUnsupported is returned by receive-only brokers.
	ErrPublishUnsupported = errors.New("broker does not support publishing")
)
