package commands

import (
	"github.com/spf13/cobra"

	"coplot/internal/figures/bars"
)

func stackCmd() *cobra.Command {
	return barCmd(bars.NewStacked(), "stack", "Render the stacked census bars")
}
