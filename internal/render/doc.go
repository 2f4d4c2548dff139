// Package render composes figures on top of gonum/plot: two-scale overlays,
// shared-axis panel grids and bar groups, plus the canvas and format
// plumbing for writing them out.
package render
