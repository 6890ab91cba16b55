/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/fatih/color"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/visaattrs/pkg/visaattr"
	"github.com/voedger/visaattrs/pkg/visaconsts"
)

// findAttribute looks attribute up by symbolic name or by hexadecimal identifier, e.g. «0x3FFF0021».
// Name prefix «VI_ATTR_» and letter case may be omitted
func findAttribute(catalog *visaattr.Catalog, arg string) (visaattr.IAttribute, error) {
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		id, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a valid identifier: %v", errUnknownAttribute, arg, err)
		}
		if a, ok := catalog.Attribute(visaconsts.AttrID(id)); ok {
			return a, nil
		}
		return nil, fmt.Errorf("%w: %s", errUnknownAttribute, arg)
	}

	name := strings.ToUpper(arg)
	if !strings.HasPrefix(name, attrNamePrefix) {
		name = attrNamePrefix + name
	}
	if a, ok := catalog.AttributeByName(name); ok {
		return a, nil
	}
	if s := suggest(catalog, name); s != "" {
		return nil, fmt.Errorf("%w: %s, did you mean %s?", errUnknownAttribute, arg, s)
	}
	return nil, fmt.Errorf("%w: %s", errUnknownAttribute, arg)
}

// suggest returns closest attribute name or empty string if nothing is close enough
func suggest(catalog *visaattr.Catalog, name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, n := range catalog.Names() {
		d := levenshtein.Distance(name, n, nil)
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	if logger.IsVerbose() && best != "" {
		logger.Verbose(fmt.Sprintf("closest to %s is %s, distance %d", name, best, bestDist))
	}
	return best
}

func newAttributeView(a visaattr.IAttribute) attributeView {
	v := attributeView{
		Name:        a.Name(),
		ID:          a.ID().String(),
		Access:      a.Access().TrimString(),
		Scope:       a.Scope().TrimString(),
		Data:        a.Data().TrimString(),
		ShortDesc:   a.ShortDesc(),
		Description: a.Description(),
	}
	switch c := a.Constraint().(type) {
	case *visaattr.Range:
		v.Range = &rangeView{Min: c.Min(), Max: c.Max()}
	case *visaattr.NamedValues:
		for _, n := range c.Names() {
			val, _ := c.FromString(n)
			v.Values = append(v.Values, namedValueView{Name: n, Value: val})
		}
	}
	return v
}

type palette struct {
	name, ro, rw, global, local func(a ...interface{}) string
}

func newPalette(noColor bool) palette {
	if noColor {
		color.NoColor = true
	}
	return palette{
		name:   color.New(color.Bold).SprintFunc(),
		ro:     color.New(color.FgYellow).SprintFunc(),
		rw:     color.New(color.FgGreen).SprintFunc(),
		global: color.New(color.FgCyan).SprintFunc(),
		local:  color.New(color.FgMagenta).SprintFunc(),
	}
}

func (p palette) access(a visaattr.IAttribute) string {
	s := a.Access().TrimString()
	if a.Writable() {
		return p.rw(s)
	}
	return p.ro(s)
}

func (p palette) scope(a visaattr.IAttribute) string {
	s := a.Scope().TrimString()
	if a.Scope() == visaattr.ScopeKind_Local {
		return p.local(s)
	}
	return p.global(s)
}

func constraintString(a visaattr.IAttribute) string {
	if c := a.Constraint(); c != nil {
		return c.String()
	}
	if minimum, maximum, ok := a.Data().Bounds(); ok {
		return fmt.Sprintf("(%s) [%d, %d]", a.Data().TrimString(), minimum, maximum)
	}
	return "-"
}
