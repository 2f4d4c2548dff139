package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"coplot/internal/app"
	"coplot/internal/figure"
	"coplot/internal/render"
)

var (
	cfg app.Config

	outDir   string
	format   string
	dataRoot string
	width    float64
	height   float64

	wire *app.Wire
)

func Execute() error {
	var err error
	cfg, err = app.FromEnv()
	if err != nil {
		return err
	}

	root := &cobra.Command{
		Use:   "coplot",
		Short: "Compose and render the figure gallery",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Data = dataRoot
			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&outDir, "out", cfg.Out, "directory rendered figures land in")
	root.PersistentFlags().StringVarP(&format, "format", "f", cfg.Format, "render format (png, svg, pdf, eps, jpg, tif)")
	root.PersistentFlags().StringVar(&dataRoot, "data-root", cfg.Data, "root directory for dataset files")
	root.PersistentFlags().Float64Var(&width, "width", cfg.Width, "figure width in inches (0 keeps each figure's own)")
	root.PersistentFlags().Float64Var(&height, "height", cfg.Height, "figure height in inches (0 keeps each figure's own)")

	root.AddCommand(
		listCmd(), renderCmd(),
		dualaxisCmd(), gridCmd(), barsCmd(), stackCmd(),
		exportCmd(), fetchCmd(), previewCmd(),
	)
	return root.Execute()
}

// optionsFor sizes the render from the figure's preferred size, overridden
// by the width and height flags.
func optionsFor(info figure.Info) render.Options {
	o := render.Options{Width: info.Width, Height: info.Height, Format: format}
	if width > 0 {
		o.Width = width
	}
	if height > 0 {
		o.Height = height
	}
	return o
}

// writeFigure builds b over t and renders it to output. An empty output
// lands in the out directory as <name>.<format>; otherwise the file
// extension picks the format.
func writeFigure(b figure.Builder, t figure.Table, output string) error {
	fig, err := b.Build(t)
	if err != nil {
		return err
	}
	o := optionsFor(b.Info())
	path := output
	if path == "" {
		path = filepath.Join(outDir, b.Info().Name+"."+format)
	} else if f := render.FormatFromPath(path); f != "" {
		o.Format = f
	}
	if err := wire.Renderer.RenderFile(fig, path, o); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

// loadTable reads the table override, or falls back to b's sample table.
func loadTable(b figure.Builder, path string) (figure.Table, error) {
	if path == "" {
		return b.DefaultTable(), nil
	}
	return wire.Store.Load(path)
}
