// movegen.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements the move generator.
//
// The algorithm is based on Steven Gordon's GADDAG paper,
// "A Faster Scrabble Move Generation Algorithm" (1994), which in
// turn builds on Appel & Jacobson, "The World's Fastest Scrabble
// Program".
//
// The main functions in this module are GameState.GenerateMoves()
// and GameState.GenerateMovesContext(). Given a game state,
// comprising a Board, a Rack and a Gaddag word graph, they return
// all legal tile moves.
//
// Moves are found by examining each one-dimensional Axis of the
// board in turn, i.e. 15 rows and 15 columns for a total of 30
// axes. For each Axis an array of pointers to its corresponding
// Board Squares is constructed. The cross-check set of each empty
// Square is calculated, i.e. the set of letters that form valid
// words by connecting with word parts across the square's Axis.
// To save processing time, the cross-check sets are also
// intersected with the letters in the rack, unless the rack
// contains a blank tile.
//
// Any empty square adjacent to a covered square within the axis
// is an anchor square. Each anchor is examined in turn. Starting
// at the root of the Gaddag, a tile is placed on the anchor and
// the word is extended to the left, consuming rack tiles and any
// previously placed tiles, while following arcs in the graph.
// At any point the traversal may pivot on the separator arc and
// extend the word to the right of the anchor instead. Whenever a
// terminal node is reached at a legal word boundary, a move has
// been found.
//
// To avoid generating the same move from two different anchors,
// the leftward extension is bounded by the number of open squares
// up to the previous anchor, and a word record or pivot is only
// allowed where the word's left end is flush against an empty
// square or the board edge.
//
// Note: SCRABBLE is a registered trademark. This software or its
// author are in no way affiliated with or endorsed by the owners
// or licensees of the SCRABBLE trademark.

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
	"context"
	"sort"
	"unicode"
)

// CancellationError is returned by GenerateMovesContext when move
// generation is aborted because its context was cancelled or its
// deadline expired
type CancellationError struct {
	Err error
}

func (e *CancellationError) Error() string {
	return "move generation cancelled: " + e.Err.Error()
}

func (e *CancellationError) Unwrap() error {
	return e.Err
}

// Axis stores information about a row or column on the board where
// the generator is looking for valid moves
type Axis struct {
	state      *GameState
	horizontal bool
	// A bitmap of the letters in the rack, having all bits set if
	// the rack has a blank ('?') in it
	rackSet uint
	// rackString is the original rack, stored as a string
	rackString string
	// Array of convenience pointers to the board squares on this Axis
	sq [BoardSize]*Square
	// A bitmap of the letters that are allowed on each square,
	// intersected with the current rack
	crossCheck [BoardSize]uint
	// A boolean for each square indicating whether it is an anchor
	// square
	isAnchor [BoardSize]bool
}

// Init initializes a fresh Axis object, associating it with a board
// row or column
func (axis *Axis) Init(state *GameState, rackSet uint, index int, horizontal bool) {
	axis.state = state
	axis.rackSet = rackSet
	axis.horizontal = horizontal
	axis.rackString = state.Rack.AsString()
	board := state.Board
	// Build an array of pointers to the squares on this axis
	for i := 0; i < BoardSize; i++ {
		axis.sq[i] = board.LineSq(horizontal, index, i)
	}
	// Mark all empty squares having at least one occupied
	// adjacent square as anchors
	for i := 0; i < BoardSize; i++ {
		sq := axis.sq[i]
		if sq.Tile != nil {
			// Already have a tile here: not an anchor and no
			// cross-check set needed
			continue
		}
		var isAnchor bool
		if board.NumTiles == 0 {
			// Special case:
			// If no tile has yet been placed on the board, the
			// start square is the only anchor. It is marked on the
			// horizontal axis only; the vertical mirror images of
			// the first moves would be redundant.
			isAnchor = horizontal && index == StartRow && i == StartCol
		} else {
			isAnchor = board.NumAdjacentTiles(sq.Row, sq.Col) > 0
		}
		if !isAnchor {
			// Empty square with no adjacent tiles: not an anchor,
			// and we can place any letter from the rack here
			axis.crossCheck[i] = rackSet
		} else {
			// This is an anchor square, i.e. an empty square with
			// at least one adjacent tile. Note, however, that the
			// cross-check set for it may be zero, if no tile from
			// the rack can be placed in it due to cross-words.
			axis.isAnchor[i] = true
			axis.crossCheck[i] = rackSet & axis.crossSet(sq)
		}
	}
}

// crossSet returns the set of letters that the cross word(s), if
// any, allow in the given empty square
func (axis *Axis) crossSet(sq *Square) uint {
	var prev, next int
	if axis.horizontal {
		prev, next = ABOVE, BELOW
	} else {
		prev, next = LEFT, RIGHT
	}
	board := axis.state.Board
	left := board.WordFragment(sq.Row, sq.Col, prev)
	right := board.WordFragment(sq.Row, sq.Col, next)
	if len(left) == 0 && len(right) == 0 {
		// No cross word, so no cross check constraint
		return ^uint(0)
	}
	return axis.state.Gaddag.CrossSet(left, right)
}

// IsAnchor returns true if the given square within the Axis
// is an anchor square
func (axis *Axis) IsAnchor(index int) bool {
	return axis.isAnchor[index]
}

// IsOpen returns true if the given square within the Axis
// is open for a new Tile from the Rack
func (axis *Axis) IsOpen(index int) bool {
	return axis.sq[index].Tile == nil && axis.crossCheck[index] > 0
}

// Allows returns true if the given letter can be placed
// in the indexed square within the Axis, in compliance
// with the cross checks
func (axis *Axis) Allows(index int, letter rune) bool {
	if axis == nil || axis.sq[index].Tile != nil {
		// We already have a tile in this square
		return false
	}
	return axis.state.Gaddag.alphabet.Member(letter, axis.crossCheck[index])
}

// anchorGen holds the state of the word search emanating from a
// single anchor square
type anchorGen struct {
	axis   *Axis
	gaddag *Gaddag
	anchor int
	// The rack tiles still available, with '?' for blanks
	rack []rune
	// The word built so far. The left part is accumulated in
	// consumption order, i.e. reversed; blanks are recorded as
	// lower case letters.
	word []rune
	// The moves found so far
	moves []Move
}

// occupied returns true if the square at the given position within
// the axis holds a previously played tile. Positions off the board
// count as empty.
func (gen *anchorGen) occupied(pos int) bool {
	return pos >= 0 && pos < BoardSize && gen.axis.sq[pos].Tile != nil
}

// useTile removes one tile with the given letter from the rack
func (gen *anchorGen) useTile(letter rune) {
	for i, r := range gen.rack {
		if r == letter {
			gen.rack[i] = gen.rack[len(gen.rack)-1]
			gen.rack = gen.rack[:len(gen.rack)-1]
			return
		}
	}
}

// restoreTile puts a previously used tile back on the rack
func (gen *anchorGen) restoreTile(letter rune) {
	gen.rack = append(gen.rack, letter)
}

// hasTile returns true if the rack holds a tile with the
// given letter
func (gen *anchorGen) hasTile(letter rune) bool {
	for _, r := range gen.rack {
		if r == letter {
			return true
		}
	}
	return false
}

// extendLeft consumes the square at pos, which is the anchor or a
// square to its left, and continues the leftward traversal.
// leftBudget is the number of additional empty squares beyond pos
// that may still be claimed.
func (gen *anchorGen) extendLeft(pos int, state int32, leftBudget int) {
	axis := gen.axis
	if sq := axis.sq[pos]; sq.Tile != nil {
		// A previously played tile: it must match the graph
		if next := gen.gaddag.NextNode(state, sq.Tile.Meaning); next != NoNode {
			gen.word = append(gen.word, sq.Tile.Meaning)
			gen.stepLeft(pos, next, leftBudget)
			gen.word = gen.word[:len(gen.word)-1]
		}
		return
	}
	// An empty square: place a tile from the rack, within the
	// constraints of the graph and the cross-checks
	gen.gaddag.forEachArc(state, func(sym rune, next int32) {
		if sym == Separator || !axis.Allows(pos, sym) {
			return
		}
		if gen.hasTile(sym) {
			gen.useTile(sym)
			gen.word = append(gen.word, sym)
			gen.stepLeft(pos, next, leftBudget)
			gen.word = gen.word[:len(gen.word)-1]
			gen.restoreTile(sym)
		}
		if gen.hasTile('?') {
			// Also try a blank tile, recorded as lower case
			gen.useTile('?')
			gen.word = append(gen.word, unicode.ToLower(sym))
			gen.stepLeft(pos, next, leftBudget)
			gen.word = gen.word[:len(gen.word)-1]
			gen.restoreTile('?')
		}
	})
}

// stepLeft is called after the square at pos has been consumed.
// It records a complete word, pivots into the rightward phase, or
// continues to the left, as the automaton and the board allow.
func (gen *anchorGen) stepLeft(pos int, state int32, leftBudget int) {
	// The left end of the word is legal if it rests against an
	// empty square or the board edge
	leftFlush := !gen.occupied(pos - 1)
	if leftFlush {
		if gen.gaddag.IsTerminal(state) && !gen.occupied(gen.anchor+1) {
			// The traversal has read a complete reversed word and
			// both ends are legal word boundaries
			gen.record(pos, gen.anchor+1)
		}
		if sep := gen.gaddag.NextNode(state, Separator); sep != NoNode {
			// Pivot: extend to the right of the anchor
			gen.extendRight(gen.anchor+1, sep, pos)
		}
	}
	if pos == 0 {
		return
	}
	if gen.occupied(pos - 1) {
		// A previously played tile extends the word further to
		// the left; consuming it costs nothing
		gen.extendLeft(pos-1, state, leftBudget)
	} else if leftBudget > 0 && len(gen.rack) > 0 {
		gen.extendLeft(pos-1, state, leftBudget-1)
	}
}

// extendRight continues the word to the right of the anchor,
// arriving at the square at pos in the given automaton state.
// leftStart is the leftmost square of the word.
func (gen *anchorGen) extendRight(pos int, state int32, leftStart int) {
	if gen.gaddag.IsTerminal(state) && !gen.occupied(pos) {
		// Complete word ending at a legal boundary
		gen.record(leftStart, pos)
	}
	if pos >= BoardSize {
		return
	}
	axis := gen.axis
	if sq := axis.sq[pos]; sq.Tile != nil {
		// A previously played tile: it must match the graph
		if next := gen.gaddag.NextNode(state, sq.Tile.Meaning); next != NoNode {
			gen.word = append(gen.word, sq.Tile.Meaning)
			gen.extendRight(pos+1, next, leftStart)
			gen.word = gen.word[:len(gen.word)-1]
		}
		return
	}
	gen.gaddag.forEachArc(state, func(sym rune, next int32) {
		if sym == Separator || !axis.Allows(pos, sym) {
			return
		}
		if gen.hasTile(sym) {
			gen.useTile(sym)
			gen.word = append(gen.word, sym)
			gen.extendRight(pos+1, next, leftStart)
			gen.word = gen.word[:len(gen.word)-1]
			gen.restoreTile(sym)
		}
		if gen.hasTile('?') {
			gen.useTile('?')
			gen.word = append(gen.word, unicode.ToLower(sym))
			gen.extendRight(pos+1, next, leftStart)
			gen.word = gen.word[:len(gen.word)-1]
			gen.restoreTile('?')
		}
	})
}

// record creates a TileMove for the word currently held by the
// generator, spanning the axis squares [start, end)
func (gen *anchorGen) record(start, end int) {
	length := end - start
	if length < MinWordLen {
		return
	}
	// Reassemble the word in reading order: the squares
	// [start, anchor] were consumed right-to-left, while any
	// squares beyond the anchor were consumed left-to-right
	word := make([]rune, 0, length)
	leftLen := gen.anchor - start + 1
	if leftLen > length {
		leftLen = length
	}
	for i := leftLen - 1; i >= 0; i-- {
		word = append(word, gen.word[i])
	}
	word = append(word, gen.word[leftLen:]...)
	covers := make(Covers, length)
	placed := 0
	for i := 0; i < length; i++ {
		sq := gen.axis.sq[start+i]
		if sq.Tile != nil {
			continue
		}
		meaning := word[i]
		letter := meaning
		if unicode.IsLower(meaning) {
			// A blank tile: its meaning is the upper case letter
			letter = '?'
			meaning = unicode.ToUpper(meaning)
		}
		covers[Coordinate{sq.Row, sq.Col}] = Cover{letter, meaning}
		placed++
	}
	if placed == 0 {
		return
	}
	gen.moves = append(gen.moves,
		NewUncheckedTileMove(gen.axis.state.Board, covers))
}

// genMovesFromAnchor returns the available moves that use the given
// square within the Axis as an anchor
func (axis *Axis) genMovesFromAnchor(anchor int, maxLeft int) []Move {
	gen := anchorGen{
		axis:   axis,
		gaddag: axis.state.Gaddag,
		anchor: anchor,
		rack:   []rune(axis.rackString),
		word:   make([]rune, 0, BoardSize),
	}
	gen.extendLeft(anchor, gen.gaddag.Root(), maxLeft)
	return gen.moves
}

// GenerateMoves returns a list of all legal moves along this Axis
func (axis *Axis) GenerateMoves(ctx context.Context, lenRack int) ([]Move, error) {
	moves := make([]Move, 0)
	lastAnchor := -1
	// Process the anchors, one by one, from left to right
	for i := 0; i < BoardSize; i++ {
		if !axis.IsAnchor(i) {
			continue
		}
		// Poll for cancellation at anchor boundaries
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, &CancellationError{Err: err}
			}
		}
		if axis.crossCheck[i] > 0 {
			// A tile from the rack can actually be placed here:
			// count open squares to the anchor's left,
			// up to but not including the previous anchor, if any.
			// Open squares are squares that are empty and can
			// accept a tile from the rack.
			openCnt := 0
			left := i
			for left > 0 && left > (lastAnchor+1) && axis.IsOpen(left-1) {
				openCnt++
				left--
			}
			moves = append(moves,
				axis.genMovesFromAnchor(i, min(openCnt, lenRack-1))...,
			)
		}
		lastAnchor = i
	}
	return moves, nil
}

func min(i1, i2 int) int {
	if i1 <= i2 {
		return i1
	}
	return i2
}

// coverKey returns a canonical string for the covers of a tile
// move. Two moves forming the same word at the same position can
// still differ in their covers, e.g. when a blank stands in for a
// letter that is also present on the rack.
func coverKey(move *TileMove) string {
	key := make([]rune, 0, len(move.Covers)*2)
	for row := move.TopLeft.Row; row <= move.BottomRight.Row; row++ {
		for col := move.TopLeft.Col; col <= move.BottomRight.Col; col++ {
			if cover, ok := move.Covers[Coordinate{row, col}]; ok {
				key = append(key, cover.Letter, cover.Meaning)
			} else {
				key = append(key, '.')
			}
		}
	}
	return string(key)
}

// sortMoves puts a move list into a deterministic order, so that
// repeated generations from identical game states yield identical
// results regardless of goroutine scheduling
func sortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool {
		a, aok := moves[i].(*TileMove)
		b, bok := moves[j].(*TileMove)
		if !aok || !bok {
			return bok
		}
		if a.TopLeft != b.TopLeft {
			if a.TopLeft.Row != b.TopLeft.Row {
				return a.TopLeft.Row < b.TopLeft.Row
			}
			return a.TopLeft.Col < b.TopLeft.Col
		}
		if a.Horizontal != b.Horizontal {
			return a.Horizontal
		}
		if a.Word != b.Word {
			return a.Word < b.Word
		}
		return coverKey(a) < coverKey(b)
	})
}

// GenerateMovesContext returns a list of all legal tile moves in the
// GameState, considering the Board and the player's Rack. The
// generation works by dividing the task into 30 sub-tasks of finding
// legal moves within each Axis, i.e. all columns and rows of the
// board. The sub-tasks are performed concurrently by 30 goroutines.
// If the given context is cancelled, generation stops and a
// CancellationError is returned.
func (state *GameState) GenerateMovesContext(ctx context.Context) ([]Move, error) {
	rack := state.Rack.AsRunes()
	lenRack := len(rack)
	// Generate a bit map for the letters in the rack. If the rack
	// contains blank tiles ('?'), the bit map will have all bits set.
	rackSet := state.Rack.AsSet(&state.Gaddag.alphabet)
	type axisResult struct {
		moves []Move
		err   error
	}
	// Result channel containing up to BoardSize*2 move lists
	results := make(chan axisResult, BoardSize*2)
	// Goroutine to find moves on a particular axis (row or column)
	kickOffAxis := func(index int, horizontal bool) {
		var axis Axis
		axis.Init(state, rackSet, index, horizontal)
		moves, err := axis.GenerateMoves(ctx, lenRack)
		results <- axisResult{moves, err}
	}
	// Start the 30 goroutines (columns and rows = 2 * BoardSize)
	for i := 0; i < BoardSize; i++ {
		go kickOffAxis(i, true)
		go kickOffAxis(i, false)
	}
	// Collect move candidates from all goroutines and
	// append them to the moves list
	moves := make([]Move, 0)
	var genErr error
	for i := 0; i < BoardSize*2; i++ {
		result := <-results
		if result.err != nil {
			genErr = result.err
			continue
		}
		moves = append(moves, result.moves...)
	}
	if genErr != nil {
		return nil, genErr
	}
	sortMoves(moves)
	return moves, nil
}

// GenerateMoves returns a list of all legal tile moves in the
// GameState. It is equivalent to GenerateMovesContext with a
// context that is never cancelled.
func (state *GameState) GenerateMoves() []Move {
	moves, _ := state.GenerateMovesContext(context.Background())
	return moves
}
