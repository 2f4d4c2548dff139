// Package dataset provides the builtin sample tables and table file IO.
//
// Tables travel as CSV (a header row plus numeric rows) or JSON. The
// FileStore resolves relative paths under a root directory and writes
// atomically so a half-written file never replaces a good one.
package dataset
