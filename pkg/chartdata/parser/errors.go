package parser

import (
	"errors"
	"fmt"
)

// ErrMissingReference indicates a tx, cat, or val element without its
// strRef, multiLvlStrRef, or numRef child.
var ErrMissingReference = errors.New("reference element missing")

// ErrMissingCache indicates a reference element without its cache child.
var ErrMissingCache = errors.New("cache element missing")

// ErrMissingPointCount indicates a cache without its required ptCount.
var ErrMissingPointCount = errors.New("point count missing")

// ErrMissingPointIndex indicates a pt element without its idx attribute.
var ErrMissingPointIndex = errors.New("point index attribute missing")

// ErrMissingPointValue indicates a pt element without its v child.
var ErrMissingPointValue = errors.New("point value element missing")

// ErrMissingLevel indicates a multi-level cache with no lvl children.
var ErrMissingLevel = errors.New("multi-level cache has no levels")

// StructureError reports structurally corrupt series markup. It is
// distinguishable from empty-but-well-formed input, which parses without
// error.
type StructureError struct {
	// Element locates the offending element, e.g. "ser/val/numRef".
	Element string
	Err     error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("corrupt series markup at %s: %v", e.Element, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

func structureErr(element string, err error) *StructureError {
	return &StructureError{Element: element, Err: err}
}
