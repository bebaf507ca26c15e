package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivermaze/config"
	"github.com/katalvlaran/rivermaze/slopes"
)

func slopesCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "slopes [file]",
		Short: "Validate a slope table and show which drainage areas use each bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("%w: n must be positive, got %d", config.ErrBadConfig, n)
			}
			tbl, err := slopes.Load(args[0])
			if err != nil {
				return err
			}
			if err := tbl.Validate(); err != nil {
				return err
			}

			side := 2*n + 1
			cells := side * side
			bounds := tbl.Boundaries(cells)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "bucket\tlower\tupper\tmin area\n")
			for i, p := range tbl.Pairs() {
				minArea := "-"
				if b := bounds[i]; b >= 0 {
					minArea = fmt.Sprint(b)
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", i, p.Lower, p.Upper, minArea)
			}
			fmt.Fprintf(tw, "max slope\t\t%d\t\n", tbl.MaxSlope())
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", config.DefaultN, "maze half-size the table is evaluated for")
	return cmd
}
