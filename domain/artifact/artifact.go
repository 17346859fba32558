// Package artifact describes rendered documents once they have been persisted.
package artifact

import (
	"time"
)

// Ref is a reference to a persisted document.
type Ref struct {
	// Name is the file name, e.g. graph_line.svg.
	Name string `json:"name"`

	// Path is where the document can be opened from.
	Path string `json:"path"`

	// ContentType is the MIME type of the document.
	ContentType string `json:"content_type,omitempty"`

	// Size is the size in bytes.
	Size int64 `json:"size"`

	// Checksum is the hex-encoded SHA-256 of the content.
	Checksum string `json:"checksum,omitempty"`

	// CreatedAt is when the document was written.
	CreatedAt time.Time `json:"created_at"`
}

// NewRef creates a reference for name stamped with the current time.
func NewRef(name string) Ref {
	return Ref{
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithPath sets the location of the document.
func (r Ref) WithPath(path string) Ref {
	r.Path = path
	return r
}

// WithContentType sets the content type.
func (r Ref) WithContentType(contentType string) Ref {
	r.ContentType = contentType
	return r
}

// WithSize sets the size.
func (r Ref) WithSize(size int64) Ref {
	r.Size = size
	return r
}

// WithChecksum sets the checksum.
func (r Ref) WithChecksum(checksum string) Ref {
	r.Checksum = checksum
	return r
}

// IsValid returns true if the reference names a document.
func (r Ref) IsValid() bool {
	return r.Name != ""
}

// String returns the path when known, otherwise the name.
func (r Ref) String() string {
	if r.Path != "" {
		return r.Path
	}
	return r.Name
}
