/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import "github.com/voedger/visaattrs/pkg/visaconsts"

// Builds catalog of standard VISA attributes, resolved by standard VISA constants.
//
// Each call builds new catalog. Caller owns the result and may share it freely.
func Provide() (*Catalog, error) {
	return ProvideWith(visaconsts.Provide())
}

// Builds catalog of standard VISA attributes, resolved by specified resolver.
func ProvideWith(r visaconsts.IResolver) (*Catalog, error) {
	defs, err := StandardAttributes(r)
	if err != nil {
		return nil, err
	}
	return Build(r, defs)
}

// Builds catalog of standard VISA attributes.
//
// # Panics:
//   - if Provide returns error
func MustProvide() *Catalog {
	c, err := Provide()
	if err != nil {
		panic(err)
	}
	return c
}
