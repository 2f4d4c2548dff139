// Package app wires application dependencies for the binaries.
//
// It loads Config from COPLOT_* environment variables and builds the figure
// registry, dataset store and renderer, exposing them via the Wire struct
// for commands and the gallery server to use.
package app
