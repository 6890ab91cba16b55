/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaconsts

import "fmt"

// VISA attribute identifier, ViAttr in visatype.h
type AttrID uint32

// Renders identifier as VISA documents it, e.g. «0x3FFF0021»
func (id AttrID) String() string {
	return fmt.Sprintf("0x%08X", uint32(id))
}

// Symbol table resolver. Names are VISA symbolic constants, e.g. «VI_ATTR_ASRL_BAUD» or «VI_ASRL_PAR_NONE»
type resolver struct {
	symbols map[string]int64
}

// Resolver with override table consulted before base
type mergedResolver struct {
	overrides *resolver
	base      IResolver
}
