// Package figure defines the data tables, builder contract and registry
// shared by the CLI, the gallery server and the terminal preview.
package figure
