package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"coplot/internal/gallery"
	"coplot/internal/render"
)

func fetchCmd() *cobra.Command {
	var from, output string
	cmd := &cobra.Command{
		Use:   "fetch [figure]",
		Short: "Download a rendered figure from a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			f := format
			if ext := render.FormatFromPath(output); ext != "" {
				f = ext
			}

			img, err := gallery.NewClient(from).Figure(name, f)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = filepath.Join(outDir, name+"."+f)
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(path, img, 0o644); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", cfg.Gallery, "gallery base URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (extension selects the format)")
	return cmd
}
