// Package tui is the interactive terminal preview behind coplot preview.
//
// Figures are shown as braille sketches: each terminal cell carries a 2x4
// grid of micro-pixels, which is enough resolution for line shapes and bar
// silhouettes without any image output. The left sidebar lists the
// registered figures; selecting one rasterizes its sketch to fit the
// remaining area.
package tui
