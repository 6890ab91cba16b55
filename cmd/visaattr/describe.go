/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/voedger/visaattrs/pkg/visaattr"
)

func newDescribeCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME|ID",
		Short: "describe VISA attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := wireCatalog()
			if err != nil {
				return err
			}
			a, err := findAttribute(catalog, args[0])
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), a, newPalette(params.NoColor))
			return nil
		},
	}
}

func describe(out io.Writer, a visaattr.IAttribute, p palette) {
	title := cases.Title(language.English, cases.NoLower).String(a.ShortDesc())
	fmt.Fprintf(out, "%s (%v)\n", p.name(a.Name()), a.ID())
	fmt.Fprintf(out, "  %s\n", title)
	fmt.Fprintf(out, "  access: %s\n", p.access(a))
	fmt.Fprintf(out, "  scope:  %s\n", p.scope(a))
	fmt.Fprintf(out, "  data:   %s\n", a.Data().TrimString())

	switch c := a.Constraint().(type) {
	case *visaattr.Range:
		fmt.Fprintf(out, "  range:  %v\n", c)
	case *visaattr.NamedValues:
		fmt.Fprintln(out, "  values:")
		for _, n := range c.Names() {
			v, _ := c.FromString(n)
			fmt.Fprintf(out, "    %-24s %d\n", n, v)
		}
	default:
		fmt.Fprintf(out, "  values: %s\n", constraintString(a))
	}

	if d := a.Description(); d != "" {
		fmt.Fprintf(out, "\n  %s\n", d)
	}
}
