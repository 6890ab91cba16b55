/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"fmt"
	"strconv"
)

// Inclusive integer range constraint
type Range struct {
	minimum, maximum int64
}

// Returns new inclusive range constraint.
//
// # Errors:
//   - ErrIncompatibleError if minimum is greater than maximum
func NewRange(minimum, maximum int64) (*Range, error) {
	if minimum > maximum {
		return nil, ErrIncompatible("range minimum %d is greater than maximum %d", minimum, maximum)
	}
	return &Range{minimum: minimum, maximum: maximum}, nil
}

// Returns new inclusive range constraint.
//
// # Panics:
//   - if minimum is greater than maximum
func MustRange(minimum, maximum int64) *Range {
	r, err := NewRange(minimum, maximum)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Range) Kind() ConstraintKind { return ConstraintKind_Range }

func (r *Range) Min() int64 { return r.minimum }

func (r *Range) Max() int64 { return r.maximum }

// Returns is value within range
func (r *Range) Contains(v int64) bool {
	return v >= r.minimum && v <= r.maximum
}

// Returns decimal string for value.
//
// # Errors:
//   - ErrOutOfBoundsError if value is outside range
func (r *Range) ToString(v int64) (string, error) {
	if !r.Contains(v) {
		return "", ErrOutOfBounds("value %d is outside %v", v, r)
	}
	return strconv.FormatInt(v, displayBase), nil
}

// Parses decimal integer. Parsed value is not checked against range.
//
// # Errors:
//   - ErrConvertError if text is not an integer
func (r *Range) FromString(s string) (int64, error) {
	v, err := strconv.ParseInt(s, displayBase, 64)
	if err != nil {
		return 0, ErrConvert("«%s» is not an integer: %v", s, err)
	}
	return v, nil
}

func (r *Range) Format(v int64) (string, error) { return r.ToString(v) }

func (r *Range) Parse(s string) (int64, error) { return r.FromString(s) }

// Renders range as «[min, max]»
func (r *Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.minimum, r.maximum)
}
