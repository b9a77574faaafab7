// Package reading provides types and functions for lectionary reading records.
//
// The reading package handles the Reading record representation and the text
// normalization pipeline applied to raw table cells: celebration-name cleanup,
// cycle-suffix extraction (A/B/C/ABC), reading-type qualifier mapping
// (Vigil/Night/Dawn/Day), and lectionary-number range collapsing. Extraction is
// pure and deterministic so identical source rows always produce identical
// records.
package reading
