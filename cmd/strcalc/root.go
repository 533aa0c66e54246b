package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strcalc/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "strcalc",
		Short: "Sum delimited integers",
		Long: `strcalc adds up the integers in a delimited string.

Numbers are separated by commas or newlines unless a header declares custom
delimiters, e.g. "//[***][%]\n1***2%3". Negative numbers and malformed
tokens are rejected; numbers above 1000 are ignored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnv(envFiles...)
		},
	}

	cmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "load environment variables from a .env file (repeatable)")
	cmd.AddCommand(newAddCmd(), newServeCmd())
	return cmd
}
