// Package tool provides the domain model for host-callable functions.
package tool

// Annotations describe tool behavior to hosts that list or proxy tools.
type Annotations struct {
	// ReadOnly indicates the tool has no side effects.
	ReadOnly bool `json:"read_only"`

	// Idempotent indicates multiple calls with the same input yield the same result.
	Idempotent bool `json:"idempotent"`

	// WritesFiles indicates the tool persists output to disk.
	WritesFiles bool `json:"writes_files"`

	// OpensViewer indicates the tool asks the OS to open its output.
	OpensViewer bool `json:"opens_viewer"`

	// Tags are arbitrary labels for categorization.
	Tags []string `json:"tags,omitempty"`
}

// DefaultAnnotations returns annotations with safe defaults.
func DefaultAnnotations() Annotations {
	return Annotations{}
}

// CanRetry returns true if the tool can be safely retried on failure.
func (a Annotations) CanRetry() bool {
	return a.Idempotent || a.ReadOnly
}

// HasTag reports whether tag is present.
func (a Annotations) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
