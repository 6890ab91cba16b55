/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

func newFormatCmd(_ *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "format NAME|ID VALUE",
		Short: "print display string for attribute value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := wireCatalog()
			if err != nil {
				return err
			}
			a, err := findAttribute(catalog, args[0])
			if err != nil {
				return err
			}
			v, err := strconv.ParseInt(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			s, err := a.Format(v)
			if err != nil {
				return err
			}
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%s: %d -> %s", a.Name(), v, s))
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newParseCmd(_ *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "parse NAME|ID TEXT",
		Short: "print attribute value for display string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := wireCatalog()
			if err != nil {
				return err
			}
			a, err := findAttribute(catalog, args[0])
			if err != nil {
				return err
			}
			v, err := a.Parse(args[1])
			if err != nil {
				return err
			}
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%s: %s -> %d", a.Name(), args[1], v))
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
