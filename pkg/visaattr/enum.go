/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/voedger/visaattrs/pkg/visaconsts"
)

// Closed set of named values, e.g. parity modes or lock states.
//
// Name to value and value to name maps are exact inverses.
type NamedValues struct {
	names   []string
	values  map[string]int64
	byValue map[int64]string
}

// Returns new named values set. Names are resolved to values by resolver.
//
// # Errors:
//   - ErrUnresolvedNameError if resolver does not know some name,
//   - ErrIncompatibleError if names list is empty, has duplicates or two names resolve to the same value
func NewNamedValues(r visaconsts.IResolver, names ...string) (*NamedValues, error) {
	if len(names) == 0 {
		return nil, ErrIncompatible("named values list is empty")
	}
	nv := &NamedValues{
		names:   slices.Clone(names),
		values:  make(map[string]int64, len(names)),
		byValue: make(map[int64]string, len(names)),
	}
	for _, n := range names {
		v, ok := r.Resolve(n)
		if !ok {
			return nil, ErrUnresolvedName(n)
		}
		if _, dupe := nv.values[n]; dupe {
			return nil, ErrIncompatible("name «%s» is listed twice", n)
		}
		if other, dupe := nv.byValue[v]; dupe {
			return nil, ErrIncompatible("names «%s» and «%s» have the same value %d", other, n, v)
		}
		nv.values[n] = v
		nv.byValue[v] = n
	}
	return nv, nil
}

// Returns new named values set.
//
// # Panics:
//   - if NewNamedValues returns error
func MustNamedValues(r visaconsts.IResolver, names ...string) *NamedValues {
	nv, err := NewNamedValues(r, names...)
	if err != nil {
		panic(err)
	}
	return nv
}

func (nv *NamedValues) Kind() ConstraintKind { return ConstraintKind_Enum }

// Returns is name a member of set
func (nv *NamedValues) Contains(name string) bool {
	_, ok := nv.values[name]
	return ok
}

// Returns name for value.
// Returns false if value is not a member of set
func (nv *NamedValues) ToString(v int64) (string, bool) {
	n, ok := nv.byValue[v]
	return n, ok
}

// Returns value for name.
// Returns false if name is not a member of set
func (nv *NamedValues) FromString(name string) (int64, bool) {
	v, ok := nv.values[name]
	return v, ok
}

func (nv *NamedValues) Format(v int64) (string, error) {
	if n, ok := nv.ToString(v); ok {
		return n, nil
	}
	return "", ErrNotFound("value %d in %v", v, nv)
}

func (nv *NamedValues) Parse(s string) (int64, error) {
	if v, ok := nv.FromString(s); ok {
		return v, nil
	}
	return 0, ErrNotFound("name «%s» in %v", s, nv)
}

// Returns names in construction order
func (nv *NamedValues) Names() []string {
	return slices.Clone(nv.names)
}

func (nv *NamedValues) Len() int { return len(nv.names) }

// Renders set as «{NAME1, NAME2, …}»
func (nv *NamedValues) String() string {
	return "{" + strings.Join(nv.names, ", ") + "}"
}
