package pack

import "errors"

// Domain errors for pack operations.
var (
	// ErrPackNotFound is returned when a pack does not exist.
	ErrPackNotFound = errors.New("pack not found")

	// ErrPackExists is returned when a pack already exists.
	ErrPackExists = errors.New("pack already exists")

	// ErrInvalidPack is returned when a pack is unnamed or repeats a tool name.
	ErrInvalidPack = errors.New("invalid pack")
)
