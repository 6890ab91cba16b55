/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return execRootCmdTo(os.Stdout, args, ver)
}

func execRootCmdTo(out io.Writer, args []string, ver string) error {
	params := &cliParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"visaattr",
		"VISA resource attributes catalog",
		args,
		ver,
		newListCmd(params),
		newDescribeCmd(params),
		newFormatCmd(params),
		newParseCmd(params),
	)
	rootCmd.PersistentFlags().BoolVar(&params.NoColor, "no-color", false, "Disable colored output")
	rootCmd.SetOut(out)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
