// board_test.go
//
// Copyright (C) 2026 Scrawl Games

// This file contains tests for the board: tile placement,
// adjacency, fragments and cross words.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package scrawl

import (
	"testing"
)

func placeWord(t *testing.T, board *Board, row, col int, horizontal bool, word string) {
	t.Helper()
	for _, letter := range word {
		tile := &Tile{Letter: letter, Meaning: letter,
			Score: EnglishTileSet.Scores[letter]}
		if !board.PlaceTile(row, col, tile) {
			t.Fatalf("could not place tile at %v,%v", row, col)
		}
		if horizontal {
			col++
		} else {
			row++
		}
	}
}

func TestBoardPlacement(t *testing.T) {
	board := NewBoard()
	if board.NumTiles != 0 || board.HasStartTile() {
		t.Errorf("New board should be empty")
	}
	placeWord(t, board, 7, 6, true, "CAT")
	if board.NumTiles != 3 {
		t.Errorf("Board should have 3 tiles")
	}
	if !board.HasStartTile() {
		t.Errorf("Start square should be covered")
	}
	if tile := board.TileAt(7, 7); tile == nil || tile.Letter != 'A' {
		t.Errorf("Expected A at the start square")
	}
	// Off-board and occupied placements are rejected
	if board.PlaceTile(-1, 0, &Tile{Letter: 'X', Meaning: 'X'}) {
		t.Errorf("Placed a tile off the board")
	}
	if board.PlaceTile(7, 7, &Tile{Letter: 'X', Meaning: 'X'}) {
		t.Errorf("Placed a tile on an occupied square")
	}
	if board.TileAt(-1, 0) != nil || board.TileAt(0, BoardSize) != nil {
		t.Errorf("TileAt should return nil off the board")
	}
	// Pick a tile back up
	tile := board.PickTile(7, 6)
	if tile == nil || tile.Letter != 'C' {
		t.Errorf("PickTile should return the C")
	}
	if board.NumTiles != 2 {
		t.Errorf("Board should have 2 tiles after picking one up")
	}
	if board.PickTile(7, 6) != nil {
		t.Errorf("PickTile on an empty square should return nil")
	}
}

func TestBoardAdjacency(t *testing.T) {
	board := NewBoard()
	placeWord(t, board, 7, 6, true, "CAT")
	if n := board.NumAdjacentTiles(7, 5); n != 1 {
		t.Errorf("Square left of CAT should have 1 adjacent tile, not %v", n)
	}
	if n := board.NumAdjacentTiles(6, 7); n != 1 {
		t.Errorf("Square above the A should have 1 adjacent tile, not %v", n)
	}
	if n := board.NumAdjacentTiles(8, 7); n != 1 {
		t.Errorf("Square below the A should have 1 adjacent tile, not %v", n)
	}
	if n := board.NumAdjacentTiles(0, 0); n != 0 {
		t.Errorf("A far corner should have 0 adjacent tiles, not %v", n)
	}
	// A square inside the word is adjacent to two tiles
	board.PickTile(7, 7)
	if n := board.NumAdjacentTiles(7, 7); n != 2 {
		t.Errorf("The A square should have 2 adjacent tiles, not %v", n)
	}
}

func TestFragmentsAndCrossWords(t *testing.T) {
	board := NewBoard()
	placeWord(t, board, 7, 6, true, "CAT")
	placeWord(t, board, 8, 8, false, "EAS")
	// Horizontal fragments around the empty square right of CAT
	if w := string(board.WordFragment(7, 9, LEFT)); w != "CAT" {
		t.Errorf("WordFragment left should be CAT, not %v", w)
	}
	if w := string(board.WordFragment(7, 9, RIGHT)); w != "" {
		t.Errorf("WordFragment right should be empty, not %v", w)
	}
	// Vertical fragments around the empty square below TEAS
	if w := string(board.WordFragment(11, 8, ABOVE)); w != "TEAS" {
		t.Errorf("WordFragment above should be TEAS, not %v", w)
	}
	left, right := board.CrossWords(7, 9, true)
	if left != "CAT" || right != "" {
		t.Errorf("CrossWords should be CAT/empty, not %v/%v", left, right)
	}
	left, right = board.CrossWords(6, 8, false)
	if left != "" || right != "TEAS" {
		t.Errorf("CrossWords should be empty/TEAS, not %v/%v", left, right)
	}
	// Cross scores: C+A+T above/left of (7,9) sums to 5
	hasCrossing, score := board.CrossScore(7, 9, true)
	if !hasCrossing || score != 5 {
		t.Errorf("CrossScore should be 5, not %v", score)
	}
	hasCrossing, _ = board.CrossScore(0, 0, true)
	if hasCrossing {
		t.Errorf("An isolated square should have no crossing")
	}
}

func TestBoardStrings(t *testing.T) {
	board := NewBoard()
	placeWord(t, board, 7, 6, true, "CA")
	// A blank tile with an assigned meaning shows in lower case
	if !board.PlaceTile(7, 8, &Tile{Letter: '?', Meaning: 'T'}) {
		t.Fatalf("could not place blank tile")
	}
	rows := board.ToStrings()
	if len(rows) != BoardSize {
		t.Fatalf("ToStrings should return %v rows", BoardSize)
	}
	if rows[7] != "......CAt......" {
		t.Errorf("Unexpected row representation: %v", rows[7])
	}
	if s := board.String(); s == "" {
		t.Errorf("Board should stringify to something")
	}
}
