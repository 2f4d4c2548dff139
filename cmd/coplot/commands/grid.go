package commands

import (
	"github.com/spf13/cobra"

	"coplot/internal/figures/grid"
)

func gridCmd() *cobra.Command {
	b := grid.New()
	var data, output string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the shared-axis panel grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A reshaped grid invalidates the sample's per-row limits.
			if cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols") {
				b.RowLimits = nil
			}
			t, err := loadTable(b, data)
			if err != nil {
				return err
			}
			return writeFigure(b, t, output)
		},
	}
	cmd.Flags().IntVar(&b.Rows, "rows", b.Rows, "panel rows")
	cmd.Flags().IntVar(&b.Cols, "cols", b.Cols, "panel columns")
	cmd.Flags().StringVar(&b.Title, "title", b.Title, "supertitle above the grid")
	cmd.Flags().StringVar(&data, "data", "", "table file overriding the sample data (csv or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (extension selects the format)")
	return cmd
}
