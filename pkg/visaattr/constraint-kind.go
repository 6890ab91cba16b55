/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"strconv"
	"strings"
)

// Kind of attribute value constraint
type ConstraintKind uint8

//go:generate stringer -type=ConstraintKind -output=constraint-kind_string.go

const (
	ConstraintKind_null ConstraintKind = iota

	// Inclusive numeric range, see Range
	ConstraintKind_Range

	// Closed set of named values, see NamedValues
	ConstraintKind_Enum

	ConstraintKind_Count
)

func (k ConstraintKind) MarshalText() ([]byte, error) {
	var s string
	if k < ConstraintKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a ConstraintKind in human-readable form, without "ConstraintKind_" prefix,
// suitable for debugging or error messages
func (k ConstraintKind) TrimString() string {
	const pref = "ConstraintKind_"
	return strings.TrimPrefix(k.String(), pref)
}
