package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// ChartKind adds a chart kind field.
func ChartKind(k chart.Kind) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("kind", string(k))
	}
}

// Points adds the number of parsed data points.
func Points(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("points", n)
	}
}

// Path adds a file path field.
func Path(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", p)
	}
}

// Bytes adds a size field.
func Bytes(n int64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("bytes", n)
	}
}

// ToolName adds a tool name field.
func ToolName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("tool", name)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Success adds a success field.
func Success(ok bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("success", ok)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
