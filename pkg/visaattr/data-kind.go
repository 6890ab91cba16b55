/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"strconv"
	"strings"
)

// Attribute value data type, named after VISA types from visatype.h
type DataKind uint8

//go:generate stringer -type=DataKind -output=data-kind_string.go

const (
	DataKind_null DataKind = iota

	// ViVersion, 32-bit unsigned
	DataKind_Version

	// ViString
	DataKind_String

	// ViRsrc, resource name string
	DataKind_Rsrc

	// ViUInt8
	DataKind_UInt8

	// ViUInt16
	DataKind_UInt16

	// ViUInt32
	DataKind_UInt32

	// ViInt16
	DataKind_Int16

	// ViAccessMode, 32-bit unsigned
	DataKind_AccessMode

	DataKind_Count
)

// Returns is data kind numeric
func (k DataKind) IsNumeric() bool {
	_, ok := dataKindBounds[k]
	return ok
}

// Returns inclusive bounds of numeric data kind values.
// Returns false if data kind is not numeric
func (k DataKind) Bounds() (minimum, maximum int64, ok bool) {
	b, ok := dataKindBounds[k]
	return b.minimum, b.maximum, ok
}

// Returns is data kind signed numeric
func (k DataKind) IsSigned() bool {
	b, ok := dataKindBounds[k]
	return ok && b.minimum < 0
}

// Returns is value fits into data kind bounds.
// Returns false if data kind is not numeric
func (k DataKind) Fits(v int64) bool {
	b, ok := dataKindBounds[k]
	return ok && v >= b.minimum && v <= b.maximum
}

func (k DataKind) MarshalText() ([]byte, error) {
	var s string
	if k < DataKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a DataKind in human-readable form, without "DataKind_" prefix,
// suitable for debugging or error messages
func (k DataKind) TrimString() string {
	const pref = "DataKind_"
	return strings.TrimPrefix(k.String(), pref)
}
