// Package export provides CSV persistence for reading record sets.
//
// The export package serializes accumulated reading records to a CSV file
// with a fixed column order, reads a previously written file back losslessly,
// and aggregates per-cycle and per-reading-type tallies for the run summary.
package export
