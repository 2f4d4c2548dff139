package commands

import (
	"github.com/spf13/cobra"

	"coplot/internal/figures/dualaxis"
)

func dualaxisCmd() *cobra.Command {
	b := dualaxis.New()
	var data, output string
	cmd := &cobra.Command{
		Use:   "dualaxis",
		Short: "Render the two-scale overlay",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(b, data)
			if err != nil {
				return err
			}
			return writeFigure(b, t, output)
		},
	}
	cmd.Flags().Float64Var(&b.RightMin, "right-min", b.RightMin, "lower bound of the right-hand scale")
	cmd.Flags().Float64Var(&b.RightMax, "right-max", b.RightMax, "upper bound of the right-hand scale")
	cmd.Flags().StringVar(&data, "data", "", "table file overriding the sample data (csv or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (extension selects the format)")
	return cmd
}
