package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the dotted path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

var (
	validLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "console": true}
)

// Validator validates graphs configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *Config) ValidationErrors {
	v.errors = nil

	v.validateOutput(config)
	v.validateChart(config)
	v.validatePie(config)
	v.validateLogging(config)
	v.validateWatch(config)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateOutput(config *Config) {
	if strings.TrimSpace(config.Output.Dir) == "" {
		v.addError("output.dir", "dir is required")
	}
}

func (v *Validator) validateChart(config *Config) {
	c := config.Chart
	if c.Width <= 0 {
		v.addError("chart.width", "width must be positive")
	}
	if c.Height <= 0 {
		v.addError("chart.height", "height must be positive")
	}
	if c.Padding < 0 {
		v.addError("chart.padding", "padding must be non-negative")
	}
	if c.Width > 0 && c.Height > 0 && c.Padding >= 0 &&
		(2*c.Padding >= c.Width || 2*c.Padding >= c.Height) {
		v.addError("chart.padding", fmt.Sprintf("padding %d leaves no room inside %dx%d", c.Padding, c.Width, c.Height))
	}
	if c.Color == "" {
		v.addError("chart.color", "color is required")
	}
	if c.Background == "" {
		v.addError("chart.background", "background is required")
	}
}

func (v *Validator) validatePie(config *Config) {
	for i, color := range config.Pie.Palette {
		if strings.TrimSpace(color) == "" {
			v.addError(fmt.Sprintf("pie.palette[%d]", i), "color must not be empty")
		}
	}
}

func (v *Validator) validateLogging(config *Config) {
	if config.Logging.Level != "" && !validLevels[strings.ToLower(config.Logging.Level)] {
		v.addError("logging.level", fmt.Sprintf("invalid level: %s", config.Logging.Level))
	}
	if config.Logging.Format != "" && !validFormats[strings.ToLower(config.Logging.Format)] {
		v.addError("logging.format", fmt.Sprintf("invalid format: %s", config.Logging.Format))
	}
}

func (v *Validator) validateWatch(config *Config) {
	if config.Watch.Debounce < 0 {
		v.addError("watch.debounce", "debounce must be non-negative")
	}
}
