/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "github.com/voedger/visaattrs/pkg/visaconsts"

func provideResolver(symbols visaconsts.ISymbols) visaconsts.IResolver {
	return symbols
}
