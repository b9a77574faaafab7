// Package filter provides record filtering for lectionary readings.
//
// The filter package classifies raw table rows as Sunday-equivalent (Sundays
// plus the major solemnities that follow the Sunday lectionary cycle) and
// narrows record sets to a single Sunday cycle. Both operations are pure
// predicates over their inputs.
package filter
