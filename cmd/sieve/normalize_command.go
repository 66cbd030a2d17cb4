package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sieve/internal/naming"
)

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "normalize NAME...",
		Short:       "Print the canonical comparison key for folder names",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range args {
				fmt.Fprintf(out, "%s -> %q\n", raw, naming.Normalize(raw))
			}
			return nil
		},
	}
}
