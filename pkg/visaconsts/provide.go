/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaconsts

// Returns resolver over standard VISA constants.
//
// Each call returns new resolver, resolvers share nothing.
func Provide() ISymbols {
	return newResolver(standardSymbols)
}

// Returns resolver over specified symbols. Symbols map is copied.
func New(symbols map[string]int64) ISymbols {
	return newResolver(symbols)
}

// Returns resolver which looks up overrides first, then base.
//
// Useful to add vendor-specific attributes to standard table.
func Merge(base IResolver, overrides map[string]int64) IResolver {
	return &mergedResolver{
		overrides: newResolver(overrides),
		base:      base,
	}
}
