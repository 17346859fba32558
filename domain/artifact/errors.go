package artifact

import "errors"

// Domain errors for document storage.
var (
	// ErrArtifactNotFound indicates nothing is stored under the name.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidName indicates the name is empty or contains a path.
	ErrInvalidName = errors.New("invalid artifact name")

	// ErrWriteFailed indicates the document could not be written.
	ErrWriteFailed = errors.New("failed to write artifact")

	// ErrOpenFailed indicates the viewer could not be launched.
	ErrOpenFailed = errors.New("failed to open artifact")
)
