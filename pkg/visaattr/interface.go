/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import "github.com/voedger/visaattrs/pkg/visaconsts"

// Attribute value constraint.
//
// Implemented by *Range and *NamedValues.
type IConstraint interface {
	Kind() ConstraintKind

	// Returns display string for value.
	//
	// # Errors:
	//   - ErrOutOfBoundsError if value is outside range,
	//   - ErrNotFoundError if value is not an enumeration member.
	Format(v int64) (string, error)

	// Returns value for display string.
	//
	// # Errors:
	//   - ErrConvertError if range text is not a number,
	//   - ErrNotFoundError if text is not an enumeration member name.
	Parse(s string) (int64, error)

	String() string
}

// Resolved attribute descriptor.
//
// Descriptors are immutable and safe for concurrent use.
type IAttribute interface {
	// Resolved attribute identifier, unique within catalog
	ID() visaconsts.AttrID

	// Symbolic name, e.g. «VI_ATTR_ASRL_BAUD»
	Name() string

	Access() AccessKind

	// Returns is attribute read-write
	Writable() bool

	Scope() ScopeKind

	Data() DataKind

	// Returns attribute value constraint.
	// Returns nil if attribute value is not constrained beyond its data kind
	Constraint() IConstraint

	ShortDesc() string

	Description() string

	// Returns display string for attribute value.
	//
	// Value is checked by constraint, or by data kind bounds if there is no constraint.
	Format(v int64) (string, error)

	// Returns attribute value for display string.
	//
	// Parsed value is checked the same way as Format does.
	Parse(s string) (int64, error)
}
