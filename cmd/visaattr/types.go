/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

type cliParams struct {
	NoColor bool
	Output  string
	Scope   string
	Access  string
}

// attributeView is how attribute is exported by list command
type attributeView struct {
	Name        string           `yaml:"name" json:"name"`
	ID          string           `yaml:"id" json:"id"`
	Access      string           `yaml:"access" json:"access"`
	Scope       string           `yaml:"scope" json:"scope"`
	Data        string           `yaml:"data" json:"data"`
	Range       *rangeView       `yaml:"range,omitempty" json:"range,omitempty"`
	Values      []namedValueView `yaml:"values,omitempty" json:"values,omitempty"`
	ShortDesc   string           `yaml:"short" json:"short"`
	Description string           `yaml:"description" json:"description"`
}

type rangeView struct {
	Min int64 `yaml:"min" json:"min"`
	Max int64 `yaml:"max" json:"max"`
}

type namedValueView struct {
	Name  string `yaml:"name" json:"name"`
	Value int64  `yaml:"value" json:"value"`
}
