/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var (
	errUnknownAttribute = errors.New("unknown attribute")
	errUnknownOutput    = errors.New("unknown output format")
	errUnknownFilter    = errors.New("unknown filter value")
)
