// Package calendar provides liturgical calendar calculations.
//
// The calendar package anchors the liturgical year at the First Sunday of
// Advent and determines which Sunday lectionary cycle (A, B, or C) applies to
// a given date. The liturgical year is identified by the calendar year in
// which it ends.
package calendar
