// Package dualaxis builds the two-scale overlay figure: the table's first
// series against the left axis, its second against an independent right axis.
package dualaxis
