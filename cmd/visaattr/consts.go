/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

// Maximum edit distance to suggest attribute name
const maxSuggestDistance = 6

const attrNamePrefix = "VI_ATTR_"
