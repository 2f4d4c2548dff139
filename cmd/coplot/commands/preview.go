package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"coplot/internal/tui"
)

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [figure]",
		Short: "Browse figure sketches in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
				if _, ok := wire.Figures.Lookup(initial); !ok {
					return fmt.Errorf("unknown figure %q (try: coplot list)", initial)
				}
			}
			return tui.Run(wire.Figures, initial)
		},
	}
}
