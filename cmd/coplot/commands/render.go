package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "render [figure ...]",
		Short: "Render figures to the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = wire.Figures.Names()
			}
			if data != "" && len(names) != 1 {
				return fmt.Errorf("--data applies to exactly one figure, got %d", len(names))
			}
			for _, name := range names {
				b, ok := wire.Figures.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown figure %q (try: coplot list)", name)
				}
				t, err := loadTable(b, data)
				if err != nil {
					return err
				}
				if err := writeFigure(b, t, ""); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "table file overriding the sample data (csv or json)")
	return cmd
}
