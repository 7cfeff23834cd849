// utils.go
// Copyright (C) 2026 Scrawl Games

// This file contains general utility functions.

package scrawl

// Coord returns the standard notation for a board coordinate:
// row-first ("8H") for horizontal moves and column-first ("H8")
// for vertical ones.
func Coord(row, col int, horizontal bool) string {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return ""
	}
	if horizontal {
		return rowIds[row] + colIds[col]
	}
	return colIds[col] + rowIds[row]
}
