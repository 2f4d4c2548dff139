package commands

import (
	"github.com/spf13/cobra"

	"coplot/internal/figures/bars"
)

func barsCmd() *cobra.Command {
	return barCmd(bars.NewGrouped(), "bars", "Render the grouped census bars")
}

// barCmd builds the command shape shared by the bars and stack figures.
func barCmd(b *bars.Builder, use, short string) *cobra.Command {
	var data, output string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(b, data)
			if err != nil {
				return err
			}
			return writeFigure(b, t, output)
		},
	}
	cmd.Flags().StringVar(&b.Title, "title", b.Title, "figure title")
	cmd.Flags().StringVar(&b.YLabel, "ylabel", b.YLabel, "y axis label")
	cmd.Flags().Float64Var(&b.Scale, "scale", b.Scale, "divide every value by this before plotting")
	cmd.Flags().StringVar(&data, "data", "", "table file overriding the sample data (csv or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (extension selects the format)")
	return cmd
}
