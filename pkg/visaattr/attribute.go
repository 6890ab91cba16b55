/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"strconv"

	"github.com/voedger/visaattrs/pkg/visaconsts"
)

// Attribute definition, authored by symbolic name and not yet resolved.
//
// Use Define to create definitions and Build to resolve them into catalog.
type AttributeDef struct {
	access      AccessKind
	scope       ScopeKind
	data        DataKind
	constraint  IConstraint
	short       string
	description string
}

// Returns new attribute definition. Constraint may be nil.
func Define(access AccessKind, scope ScopeKind, data DataKind, constraint IConstraint, short, description string) AttributeDef {
	return AttributeDef{
		access:      access,
		scope:       scope,
		data:        data,
		constraint:  constraint,
		short:       short,
		description: description,
	}
}

func (d AttributeDef) Access() AccessKind      { return d.access }
func (d AttributeDef) Scope() ScopeKind        { return d.scope }
func (d AttributeDef) Data() DataKind          { return d.data }
func (d AttributeDef) Constraint() IConstraint { return d.constraint }
func (d AttributeDef) ShortDesc() string       { return d.short }
func (d AttributeDef) Description() string     { return d.description }

// Checks definition consistency
func (d AttributeDef) validate(name string) error {
	if d.access == AccessKind_null || d.access >= AccessKind_Count {
		return ErrMissed("%s access kind", name)
	}
	if d.scope == ScopeKind_null || d.scope >= ScopeKind_Count {
		return ErrMissed("%s scope kind", name)
	}
	if d.data == DataKind_null || d.data >= DataKind_Count {
		return ErrMissed("%s data kind", name)
	}

	switch c := d.constraint.(type) {
	case nil:
	case *Range:
		if c == nil {
			return ErrMissed("%s range", name)
		}
		if !d.data.Fits(c.Min()) || !d.data.Fits(c.Max()) {
			return ErrIncompatible("%s range %v exceeds %s bounds", name, c, d.data.TrimString())
		}
	case *NamedValues:
		if c == nil {
			return ErrMissed("%s named values", name)
		}
		if !d.data.IsNumeric() {
			return ErrIncompatible("%s named values are not applicable to %s", name, d.data.TrimString())
		}
		for _, n := range c.names {
			if v := c.values[n]; !d.data.Fits(v) {
				return ErrIncompatible("%s value %s = %d exceeds %s bounds", name, n, v, d.data.TrimString())
			}
		}
	default:
		return ErrIncompatible("%s constraint %T is not supported", name, c)
	}
	return nil
}

// Resolved attribute descriptor
type attribute struct {
	AttributeDef
	id   visaconsts.AttrID
	name string
}

func newAttribute(id visaconsts.AttrID, name string, def AttributeDef) *attribute {
	return &attribute{
		AttributeDef: def,
		id:           id,
		name:         name,
	}
}

func (a *attribute) ID() visaconsts.AttrID { return a.id }

func (a *attribute) Name() string { return a.name }

func (a *attribute) Writable() bool { return a.access == AccessKind_ReadWrite }

func (a *attribute) Format(v int64) (string, error) {
	if a.constraint != nil {
		return a.constraint.Format(v)
	}
	if err := a.checkBounds(v); err != nil {
		return "", err
	}
	return strconv.FormatInt(v, displayBase), nil
}

func (a *attribute) Parse(s string) (int64, error) {
	if !a.data.IsNumeric() {
		return 0, ErrIncompatible("%s value of %s kind is not numeric", a.name, a.data.TrimString())
	}
	if a.constraint != nil {
		v, err := a.constraint.Parse(s)
		if err != nil {
			return 0, err
		}
		if r, ok := a.constraint.(*Range); ok && !r.Contains(v) {
			return 0, ErrOutOfBounds("%s value %d is outside %v", a.name, v, r)
		}
		return v, nil
	}
	v, err := strconv.ParseInt(s, displayBase, 64)
	if err != nil {
		return 0, ErrConvert("%s «%s» is not an integer: %v", a.name, s, err)
	}
	if err := a.checkBounds(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (a *attribute) checkBounds(v int64) error {
	minimum, maximum, ok := a.data.Bounds()
	if !ok {
		return ErrIncompatible("%s value of %s kind is not numeric", a.name, a.data.TrimString())
	}
	if v < minimum || v > maximum {
		return ErrOutOfBounds("%s value %d is outside %s bounds [%d, %d]", a.name, v, a.data.TrimString(), minimum, maximum)
	}
	return nil
}

func (a *attribute) String() string {
	return a.name + " (" + a.id.String() + ")"
}
