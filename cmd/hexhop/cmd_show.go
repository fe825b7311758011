package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexhop/pond"
)

var showCmd = &cobra.Command{
	Use:   "show <pond-file>",
	Short: "Print a pond and the ID of every cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pond.LoadFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if p.Name != "" {
			fmt.Fprintf(out, "%s (%d×%d, %d cells)\n", p.Name, p.Rows, p.Cols, p.Len())
		}
		fmt.Fprint(out, p.String())
		fmt.Fprintln(out)
		fmt.Fprint(out, p.IDMap())

		return nil
	},
}
