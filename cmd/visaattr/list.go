/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voedger/visaattrs/pkg/visaattr"
)

func newListCmd(params *cliParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list VISA attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := wireCatalog()
			if err != nil {
				return err
			}
			filter, err := newListFilter(params)
			if err != nil {
				return err
			}
			return list(cmd.OutOrStdout(), catalog, filter, params)
		},
	}
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputText, "Output format: text, yaml or json")
	cmd.Flags().StringVar(&params.Scope, "scope", "", "Show only attributes with scope: global or local")
	cmd.Flags().StringVar(&params.Access, "access", "", "Show only attributes with access: ro or rw")
	return cmd
}

type listFilter func(visaattr.IAttribute) bool

func newListFilter(params *cliParams) (listFilter, error) {
	scope := visaattr.ScopeKind_null
	switch strings.ToLower(params.Scope) {
	case "":
	case "global":
		scope = visaattr.ScopeKind_Global
	case "local":
		scope = visaattr.ScopeKind_Local
	default:
		return nil, fmt.Errorf("%w: scope %s", errUnknownFilter, params.Scope)
	}

	access := visaattr.AccessKind_null
	switch strings.ToLower(params.Access) {
	case "":
	case "ro", "readonly":
		access = visaattr.AccessKind_ReadOnly
	case "rw", "readwrite":
		access = visaattr.AccessKind_ReadWrite
	default:
		return nil, fmt.Errorf("%w: access %s", errUnknownFilter, params.Access)
	}

	return func(a visaattr.IAttribute) bool {
		if scope != visaattr.ScopeKind_null && a.Scope() != scope {
			return false
		}
		if access != visaattr.AccessKind_null && a.Access() != access {
			return false
		}
		return true
	}, nil
}

func list(out io.Writer, catalog *visaattr.Catalog, filter listFilter, params *cliParams) error {
	attrs := []visaattr.IAttribute{}
	catalog.Attributes(func(a visaattr.IAttribute) bool {
		if filter(a) {
			attrs = append(attrs, a)
		}
		return true
	})

	switch params.Output {
	case outputText, "":
		return listText(out, attrs, newPalette(params.NoColor))
	case outputYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(views(attrs))
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(views(attrs))
	}
	return fmt.Errorf("%w: %s", errUnknownOutput, params.Output)
}

func listText(out io.Writer, attrs []visaattr.IAttribute, p palette) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACCESS\tSCOPE\tDATA\tVALUES")
	for _, a := range attrs {
		fmt.Fprintf(w, "%v\t%s\t%s\t%s\t%s\t%s\n",
			a.ID(), p.name(a.Name()), p.access(a), p.scope(a), a.Data().TrimString(), constraintString(a))
	}
	return w.Flush()
}

func views(attrs []visaattr.IAttribute) []attributeView {
	vv := make([]attributeView, 0, len(attrs))
	for _, a := range attrs {
		vv = append(vv, newAttributeView(a))
	}
	return vv
}
