// Package chart provides the domain model for chart rendering: parsed data
// points, bounding boxes, the canvas scaler and pie slice geometry.
package chart

import "fmt"

// Kind identifies one of the supported chart types.
type Kind string

// Supported chart kinds.
const (
	KindLine    Kind = "line"
	KindBar     Kind = "bar"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
)

// AllKinds returns every supported chart kind in a stable order.
func AllKinds() []Kind {
	return []Kind{KindLine, KindBar, KindScatter, KindPie}
}

// IsValid returns true if the kind is a supported chart type.
func (k Kind) IsValid() bool {
	switch k {
	case KindLine, KindBar, KindScatter, KindPie:
		return true
	default:
		return false
	}
}

// FileName returns the fixed output file name for the kind.
// Every call for the same kind overwrites the same file.
func (k Kind) FileName() string {
	return fmt.Sprintf("graph_%s.svg", k)
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}
