/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaconsts

// Resolves VISA symbolic constant names to integer values.
//
// Attribute codes and enumeration members share the same name space,
// as they do in visa.h.
type IResolver interface {
	// Returns value of named constant.
	// Returns false if name is unknown
	Resolve(name string) (value int64, ok bool)
}

// Resolver over an enumerable symbol table
type ISymbols interface {
	IResolver

	// Returns sorted names of all known constants
	Symbols() []string
}
