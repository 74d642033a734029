package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func basenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "basename NAME [SUFFIX]",
		Short: "Strip directory and suffix from a file name",
		Long: `Print NAME with any leading directory components removed.
If SUFFIX is given and NAME ends with it, remove it too.`,
		Example: `  textutil basename /usr/bin/sort
  textutil basename include/stdio.h .h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.client(cmd.Context(), "basename").Basename(args...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}
