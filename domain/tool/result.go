package tool

import (
	"encoding/json"
	"time"
)

var (
	trueOutput  = json.RawMessage(`true`)
	falseOutput = json.RawMessage(`false`)
)

// Result contains the output of a tool execution.
type Result struct {
	// Output is the JSON value returned to the host.
	Output json.RawMessage `json:"output"`

	// Artifacts are files the call produced.
	Artifacts []ArtifactRef `json:"artifacts,omitempty"`

	// Duration is how long the execution took.
	Duration time.Duration `json:"duration"`

	// Error is a tool-level error (distinct from execution error).
	Error error `json:"-"`
}

// ArtifactRef points at a file written by a tool.
type ArtifactRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewResult creates a successful result with the given output.
func NewResult(output json.RawMessage) Result {
	return Result{Output: output}
}

// BoolResult creates a result whose output is the JSON boolean ok.
func BoolResult(ok bool) Result {
	if ok {
		return Result{Output: trueOutput}
	}
	return Result{Output: falseOutput}
}

// FailedResult creates a false result carrying the cause.
func FailedResult(err error) Result {
	return Result{Output: falseOutput, Error: err}
}

// IsError returns true if the result represents an error.
func (r Result) IsError() bool {
	return r.Error != nil
}

// Bool decodes the output as a JSON boolean. Anything else reads as false.
func (r Result) Bool() bool {
	var ok bool
	if err := json.Unmarshal(r.Output, &ok); err != nil {
		return false
	}
	return ok
}

// WithArtifact adds an artifact reference to the result.
func (r Result) WithArtifact(ref ArtifactRef) Result {
	r.Artifacts = append(r.Artifacts, ref)
	return r
}

// WithDuration records how long the call took.
func (r Result) WithDuration(d time.Duration) Result {
	r.Duration = d
	return r
}

// OutputString returns the output as a string for convenience.
func (r Result) OutputString() string {
	return string(r.Output)
}
