package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the registered figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range wire.Figures.All() {
				info := b.Info()
				fmt.Printf("%-10s %-34s %s\n", info.Name, info.Title, info.Description)
			}
			return nil
		},
	}
}
