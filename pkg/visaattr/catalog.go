/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"fmt"
	"math"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/visaattrs/pkg/visaconsts"
)

// Immutable attribute catalog, keyed by resolved attribute identifier.
//
// Catalog is never changed after Build, so it is safe for concurrent use.
type Catalog struct {
	byID   map[visaconsts.AttrID]*attribute
	byName map[string]*attribute
	ids    []visaconsts.AttrID
}

// Builds catalog from definitions keyed by symbolic attribute name.
//
// Names are resolved to attribute identifiers by resolver.
// Definitions are processed in name order, so the first failing name is reported.
// If any error occurs, no catalog is returned.
//
// # Errors:
//   - ErrUnresolvedNameError if resolver does not know some name,
//   - ErrOutOfBoundsError if resolved value is not a valid 32-bit identifier,
//   - ErrAlreadyExistsError if two names resolve to the same identifier,
//   - ErrMissedError if definition has no access, scope or data kind,
//   - ErrIncompatibleError if constraint does not fit data kind.
func Build(r visaconsts.IResolver, defs map[string]AttributeDef) (*Catalog, error) {
	names := maps.Keys(defs)
	slices.Sort(names)

	c := &Catalog{
		byID:   make(map[visaconsts.AttrID]*attribute, len(defs)),
		byName: make(map[string]*attribute, len(defs)),
		ids:    make([]visaconsts.AttrID, 0, len(defs)),
	}

	for _, name := range names {
		def := defs[name]
		if err := def.validate(name); err != nil {
			return nil, err
		}

		v, ok := r.Resolve(name)
		if !ok {
			return nil, ErrUnresolvedName(name)
		}
		if v < 0 || v > math.MaxUint32 {
			return nil, ErrOutOfBounds("attribute %s identifier %d is not a 32-bit unsigned value", name, v)
		}
		id := visaconsts.AttrID(v)
		if exists, ok := c.byID[id]; ok {
			return nil, ErrAlreadyExists("attributes %s and %s have the same identifier %v", exists.name, name, id)
		}

		a := newAttribute(id, name, def)
		c.byID[id] = a
		c.byName[name] = a
		c.ids = append(c.ids, id)

		if logger.IsTrace() {
			logger.Trace(fmt.Sprintf("%v: %s %s %s %v", a, a.access.TrimString(), a.scope.TrimString(), a.data.TrimString(), a.constraint))
		}
	}

	slices.Sort(c.ids)

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("visa attribute catalog built: %d attributes", len(c.ids)))
	}
	return c, nil
}

// Returns attribute by identifier.
// Returns false if catalog has no such attribute
func (c *Catalog) Attribute(id visaconsts.AttrID) (IAttribute, bool) {
	if a, ok := c.byID[id]; ok {
		return a, true
	}
	return nil, false
}

// Returns attribute by symbolic name.
// Returns false if catalog has no such attribute
func (c *Catalog) AttributeByName(name string) (IAttribute, bool) {
	if a, ok := c.byName[name]; ok {
		return a, true
	}
	return nil, false
}

// Enumerates attributes in identifier order until cb returns false
func (c *Catalog) Attributes(cb func(IAttribute) bool) {
	for _, id := range c.ids {
		if !cb(c.byID[id]) {
			break
		}
	}
}

// Returns attributes count
func (c *Catalog) Len() int { return len(c.ids) }

// Returns sorted symbolic names of all attributes
func (c *Catalog) Names() []string {
	nn := maps.Keys(c.byName)
	slices.Sort(nn)
	return nn
}

// Returns display string for value of specified attribute.
//
// # Errors:
//   - ErrNotFoundError if catalog has no such attribute,
//   - errors returned by IAttribute.Format
func (c *Catalog) Format(id visaconsts.AttrID, v int64) (string, error) {
	a, ok := c.byID[id]
	if !ok {
		return "", ErrAttributeNotFound(id)
	}
	return a.Format(v)
}

// Returns value of specified attribute for display string.
//
// # Errors:
//   - ErrNotFoundError if catalog has no such attribute,
//   - errors returned by IAttribute.Parse
func (c *Catalog) Parse(id visaconsts.AttrID, s string) (int64, error) {
	a, ok := c.byID[id]
	if !ok {
		return 0, ErrAttributeNotFound(id)
	}
	return a.Parse(s)
}
