// Package bars builds the grouped and stacked bar figures over a table of
// per-category series. One builder serves both layouts; stacking is handled
// by the renderer, so callers never accumulate series themselves.
package bars
