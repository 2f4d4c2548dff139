package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coplot/internal/dataset"
)

func exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [sample]",
		Short: "Write a sample table to a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := dataset.Sample(args[0])
			if !ok {
				return fmt.Errorf("unknown sample %q (have: %s)", args[0], strings.Join(sampleNames(), ", "))
			}
			path := output
			if path == "" {
				path = t.Name + ".csv"
			}
			if err := wire.Store.Save(path, t); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.csv or .json)")
	return cmd
}

func sampleNames() []string {
	samples := dataset.Samples()
	names := make([]string, len(samples))
	for i, t := range samples {
		names[i] = t.Name
	}
	return names
}
