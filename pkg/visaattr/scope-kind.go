/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"strconv"
	"strings"
)

// Attribute scope
type ScopeKind uint8

//go:generate stringer -type=ScopeKind -output=scope-kind_string.go

const (
	ScopeKind_null ScopeKind = iota

	// Value is shared by all sessions to the resource
	ScopeKind_Global

	// Value is owned by the session
	ScopeKind_Local

	ScopeKind_Count
)

func (k ScopeKind) MarshalText() ([]byte, error) {
	var s string
	if k < ScopeKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a ScopeKind in human-readable form, without "ScopeKind_" prefix,
// suitable for debugging or error messages
func (k ScopeKind) TrimString() string {
	const pref = "ScopeKind_"
	return strings.TrimPrefix(k.String(), pref)
}
