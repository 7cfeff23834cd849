// board.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements the 15x15 playing board: premium squares,
// tile placement, the adjacency cache used by the anchor finder,
// and the letter fragment queries that feed cross-checks and
// cross-word scoring.

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
	"fmt"
	"strings"
)

// BoardSize is the size of the Board
const BoardSize = 15

// The start square in the center of the board, which the first
// move must cover
const (
	StartRow = BoardSize / 2
	StartCol = BoardSize / 2
)

// Board represents the board as a matrix of Squares,
// and caches an adjacency matrix for each Square,
// consisting of pointers to adjacent Squares
type Board struct {
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize]AdjSquares
	// The number of tiles on the board
	NumTiles int
}

// Indices into AdjSquares
const (
	ABOVE = 0
	LEFT  = 1
	RIGHT = 2
	BELOW = 3
)

// AdjSquares is a list of four Square pointers,
// with a nil if the corresponding adjacent Square does not exist
type AdjSquares [4]*Square

// Tile is a tile from the Bag
type Tile struct {
	Letter   rune
	Meaning  rune // Meaning of blank tile (if Letter=='?')
	Score    int  // The nominal score of the tile
	PlayedBy int  // Which player played the tile
}

// Square is a Board square or Rack slot that can hold a Tile
type Square struct {
	Tile             *Tile
	LetterMultiplier int
	WordMultiplier   int
	Row              int // Board row 0..14, or -1 if rack square
	Col              int // Board column 0..14, or rack square 0..6
}

// String represents a Square as a string. An empty
// Square is indicated by a dot ('.').
func (square *Square) String() string {
	if square.Tile == nil {
		// Empty square
		return "."
	}
	if square.Tile.Letter == '?' && square.Row >= 0 {
		// Blank tile on the board: show its meaning in lower case
		return strings.ToLower(string(square.Tile.Meaning))
	}
	return string(square.Tile.Letter)
}

// String represents a Tile as a string
func (tile *Tile) String() string {
	if tile == nil {
		return "."
	}
	return string(tile.Letter)
}

// colIds are the column identifiers of a board
var colIds = [BoardSize]string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"K", "L", "M", "N", "O",
}

// rowIds are the row identifiers of a board
var rowIds = [BoardSize]string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
}

// NewBoard returns an initialized, empty Board
func NewBoard() *Board {
	board := &Board{}
	board.Init()
	return board
}

// Sq returns a pointer to a Board square
func (board *Board) Sq(row, col int) *Square {
	return &board.Squares[row][col]
}

// LineSq returns a pointer to a Board square addressed by a line
// and a position within it. A line is either a row (horizontal)
// or a column (vertical), so that move generation can treat both
// directions uniformly.
func (board *Board) LineSq(horizontal bool, index, pos int) *Square {
	if horizontal {
		return &board.Squares[index][pos]
	}
	return &board.Squares[pos][index]
}

// TileAt returns a pointer to the Tile in a given Square
func (board *Board) TileAt(row, col int) *Tile {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return board.Squares[row][col].Tile
}

// HasStartTile returns true if the start square is covered,
// i.e. if at least one move has been played
func (board *Board) HasStartTile() bool {
	return board.Squares[StartRow][StartCol].Tile != nil
}

// PlaceTile puts a tile on the board. Returns false if the
// coordinate is out of range or the square is already occupied.
func (board *Board) PlaceTile(row, col int, tile *Tile) bool {
	if tile == nil || row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return false
	}
	sq := board.Sq(row, col)
	if sq.Tile != nil {
		return false
	}
	sq.Tile = tile
	board.NumTiles++
	return true
}

// PickTile removes the tile at the given coordinate from the
// board and returns it, or nil if the square was empty
func (board *Board) PickTile(row, col int) *Tile {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	sq := board.Sq(row, col)
	tile := sq.Tile
	if tile != nil {
		sq.Tile = nil
		board.NumTiles--
	}
	return tile
}

// String represents a Board as a string
func (board *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(colIds[i] + " ")
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2s ", rowIds[i]))
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf("%v ", board.Sq(i, j)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToStrings returns the board as a slice of 15 strings of 15
// characters each, with '.' for empty squares and lower case
// letters for blanks
func (board *Board) ToStrings() []string {
	rows := make([]string, BoardSize)
	var sb strings.Builder
	for i := 0; i < BoardSize; i++ {
		sb.Reset()
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(board.Sq(i, j).String())
		}
		rows[i] = sb.String()
	}
	return rows
}

// NumAdjacentTiles returns the number of tiles on the
// Board that are adjacent to the given coordinate
func (board *Board) NumAdjacentTiles(row, col int) int {
	adj := &board.Adjacents[row][col]
	var count = 0
	for _, sq := range adj {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// Fragment returns a list of the tiles that extend from the square
// at row, col in the direction specified (ABOVE/BELOW/LEFT/RIGHT).
func (board *Board) Fragment(row, col int, direction int) []*Tile {
	if row < 0 || col < 0 || row >= BoardSize || col >= BoardSize {
		return nil
	}
	if direction < ABOVE || direction > BELOW {
		return nil
	}
	frag := make([]*Tile, 0, BoardSize-1)
	for {
		sq := board.Adjacents[row][col][direction]
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		row, col = sq.Row, sq.Col
	}
	return frag
}

// WordFragment returns the word formed by the tile sequence emanating
// from the given square in the indicated direction, not including the
// square itself.
func (board *Board) WordFragment(row, col int, direction int) (result []rune) {
	frag := board.Fragment(row, col, direction)
	result = make([]rune, len(frag))
	if direction == LEFT || direction == ABOVE {
		// We need to reverse the order of the fragment
		for i, tile := range frag {
			result[len(frag)-1-i] = tile.Meaning
		}
	} else {
		// The fragment is in correct reading order
		for i, tile := range frag {
			result[i] = tile.Meaning
		}
	}
	return // result
}

// CrossScore returns the sum of the scores of the tiles crossing
// the given square, either horizontally or vertically. If there are
// no crossings, returns false, 0. (Note that true, 0 is a valid
// return value, if a crossing has only blank tiles.)
func (board *Board) CrossScore(row, col int, horizontal bool) (hasCrossing bool, score int) {
	var direction int
	if horizontal {
		direction = LEFT
	} else {
		direction = ABOVE
	}
	for _, tile := range board.Fragment(row, col, direction) {
		score += tile.Score
		hasCrossing = true
	}
	if horizontal {
		direction = RIGHT
	} else {
		direction = BELOW
	}
	for _, tile := range board.Fragment(row, col, direction) {
		score += tile.Score
		hasCrossing = true
	}
	return // hasCrossing, score
}

// CrossWords returns the word fragments before and after the given
// coordinate on the board, in the indicated direction
func (board *Board) CrossWords(row, col int, horizontal bool) (left, right string) {
	var direction int
	if horizontal {
		direction = LEFT
	} else {
		direction = ABOVE
	}
	left = string(board.WordFragment(row, col, direction))
	if horizontal {
		direction = RIGHT
	} else {
		direction = BELOW
	}
	right = string(board.WordFragment(row, col, direction))
	return // left, right
}

// Init initializes an empty board with the standard premium
// square layout
func (board *Board) Init() {

	var wordMultipliers = [BoardSize]string{
		"311111131111113",
		"121111111111121",
		"112111111111211",
		"111211111112111",
		"111121111121111",
		"111111111111111",
		"111111111111111",
		"311111121111113",
		"111111111111111",
		"111111111111111",
		"111121111121111",
		"111211111112111",
		"112111111111211",
		"121111111111121",
		"311111131111113",
	}

	var letterMultipliers = [BoardSize]string{
		"111211111112111",
		"111113111311111",
		"111111212111111",
		"211111121111112",
		"111111111111111",
		"131113111311131",
		"112111212111211",
		"111211111112111",
		"112111212111211",
		"131113111311131",
		"111111111111111",
		"211111121111112",
		"111111212111111",
		"111113111311111",
		"111211111112111",
	}

	const zero = int('0')
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			sq := board.Sq(i, j)
			sq.Row = i
			sq.Col = j
			sq.LetterMultiplier = int(letterMultipliers[i][j]) - zero
			sq.WordMultiplier = int(wordMultipliers[i][j]) - zero
		}
	}
	// Initialize the cached matrix of adjacent square lists
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			var adj = &board.Adjacents[row][col]
			if row > 0 {
				// Square above
				adj[ABOVE] = board.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				// Square below
				adj[BELOW] = board.Sq(row+1, col)
			}
			if col > 0 {
				// Square to the left
				adj[LEFT] = board.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				// Square to the right
				adj[RIGHT] = board.Sq(row, col+1)
			}
		}
	}
}
