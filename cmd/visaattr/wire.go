//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"

	"github.com/voedger/visaattrs/pkg/visaattr"
	"github.com/voedger/visaattrs/pkg/visaconsts"
)

func wireCatalog() (*visaattr.Catalog, error) {
	panic(
		wire.Build(
			visaconsts.Provide,
			provideResolver,
			visaattr.ProvideWith,
		),
	)
}
