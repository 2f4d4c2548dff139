// Package commands defines the coplot CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list      Print the registered figures
//   - render    Render figures to the output directory
//   - dualaxis  Render the two-scale overlay
//   - grid      Render the shared-axis panel grid
//   - bars      Render the grouped census bars
//   - stack     Render the stacked census bars
//   - export    Write a sample table to a dataset file
//   - fetch     Download a rendered figure from a gallery
//   - preview   Browse figure sketches in the terminal
//
// # Implementation
//
// The root command loads COPLOT_* configuration and builds a dependency
// graph (figure registry, dataset store, renderer) before any subcommand
// runs, so handlers share one wired app context. Per-figure flags write
// straight into their builder's fields; the builders validate tables
// themselves, so commands only move data around.
package commands
