// Package grid builds the shared-axis panel grid figure: one line panel per
// table series, laid out row-major with synchronized x and per-row y scales.
package grid
