/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"strconv"
	"strings"
)

// Attribute access mode
type AccessKind uint8

//go:generate stringer -type=AccessKind -output=access-kind_string.go

const (
	AccessKind_null AccessKind = iota

	// Value may be read only
	AccessKind_ReadOnly

	// Value may be read and set
	AccessKind_ReadWrite

	AccessKind_Count
)

func (k AccessKind) MarshalText() ([]byte, error) {
	var s string
	if k < AccessKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an AccessKind in human-readable form, without "AccessKind_" prefix,
// suitable for debugging or error messages
func (k AccessKind) TrimString() string {
	const pref = "AccessKind_"
	return strings.TrimPrefix(k.String(), pref)
}
