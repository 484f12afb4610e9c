package shape

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when registering into a frozen registry.
var ErrFrozen = errors.New("shape registry is frozen")

// DuplicateShapeError is returned when a discriminator is registered twice.
type DuplicateShapeError struct {
	Name string
}

func (e *DuplicateShapeError) Error() string {
	return fmt.Sprintf("duplicate shape: %s is already registered", e.Name)
}

// UnknownShapeError is returned when no shape is registered for a discriminator.
//
// Path locates the offending value when the error is raised while decoding or
// while checking the catalog for completeness.
type UnknownShapeError struct {
	Name string
	Path string
}

func (e *UnknownShapeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown shape: %q", e.Name)
	}
	return fmt.Sprintf("unknown shape: %q at %s", e.Name, e.Path)
}
