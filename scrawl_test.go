// scrawl_test.go
//
// Copyright (C) 2026 Scrawl Games

// This file contains tests for the game mechanics: tile moves,
// pass and exchange moves, scoring, final adjustments and the
// robot players.

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
	"errors"
	"testing"
)

// A vocabulary that is rich enough for robot players to find
// plays in most positions
var gameVocabulary = []string{
	"AT", "ATE", "EAT", "EATS", "TEA", "TEAS", "SEA", "SEAT", "EAST",
	"SET", "SAT", "SIT", "SITE", "TIE", "TIES", "RAT", "RATS", "TAR",
	"TARS", "STAR", "ARTS", "ART", "EAR", "EARS", "EARN", "NEAR",
	"TEAR", "TEARS", "RAISE", "ARISE", "AIR", "AIRS", "RAIN", "RAINS",
	"STIR", "REST", "NEST", "NETS", "SENT", "RENT", "RISE", "SIRE",
	"IRE", "ERA", "ERAS", "ANT", "ANTS", "TAN", "TANS", "RAN", "NIT",
	"TIN", "TINS", "SIN", "SINE", "NINE", "STERN", "RINSE", "RESIN",
	"SNARE", "STAIN", "SAINT", "TRAIN", "RETINA", "RETAIN",
}

// newGameGraph builds a word graph over the game vocabulary
func newGameGraph(t testing.TB) *Gaddag {
	t.Helper()
	g, err := BuildGaddag(gameVocabulary)
	if err != nil {
		t.Fatalf("could not build word graph: %v", err)
	}
	return g
}

// rigRacks empties both racks into the bag and refills them
// with the exact letters requested, making the game deterministic
func rigRacks(t *testing.T, game *Game, letters0, letters1 string) {
	t.Helper()
	game.Racks[0].ReturnToBag(game.Bag)
	game.Racks[1].ReturnToBag(game.Bag)
	if !game.Racks[0].FillByLetters(game.Bag, []rune(letters0)) {
		t.Fatalf("could not fill rack 0 with letters %v", letters0)
	}
	if !game.Racks[1].FillByLetters(game.Bag, []rune(letters1)) {
		t.Fatalf("could not fill rack 1 with letters %v", letters1)
	}
}

// rackTiles looks up the given letters in the player's rack
func rackTiles(t *testing.T, game *Game, player int, letters string) []*Tile {
	t.Helper()
	tiles := make([]*Tile, 0, RackSize)
	for _, letter := range letters {
		tile := game.Racks[player].FindTile(letter)
		if tile == nil {
			t.Fatalf("letter '%c' not found in rack %v", letter, player)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

func TestTileMove(t *testing.T) {
	game := NewGame(newGameGraph(t))
	game.SetPlayerNames("Alice", "Bob")
	rigRacks(t, game, "EATSRIN", "EATSRIN")
	move := rackTiles(t, game, 0, "RAT")
	// The first move must go through the start square
	if err := game.MakeTileMove(2, 2, false, move); err == nil {
		t.Errorf("Accepted first move that skips the start square")
	}
	var imerr *IllegalMoveError
	if err := game.MakeTileMove(2, 2, false, move); !errors.As(err, &imerr) {
		t.Errorf("Expected an IllegalMoveError, got %v", err)
	}
	if game.TilesOnBoard() != 0 {
		t.Errorf("Board should have 0 tiles after erroneous move")
	}
	if game.PlayerToMove() != 0 {
		t.Errorf("PlayerToMove should still be 0 after erroneous move")
	}
	// Play RAT horizontally through the start square
	if err := game.MakeTileMove(7, 6, true, move); err != nil {
		t.Errorf("Legal initial move rejected: %v", err)
	}
	if game.TilesOnBoard() != 3 {
		t.Errorf("Board should have 3 tiles after correct move")
	}
	if game.Bag.TileCount() != 100-7-7-3 {
		t.Errorf("Bag should have 83 tiles after 3 tiles have been laid down")
	}
	if game.PlayerToMove() != 1 {
		t.Errorf("PlayerToMove should be 1 after correct move")
	}
	// R, A and T are worth 1 point each; the start square
	// doubles the word
	if game.Scores[0] != 6 {
		t.Errorf("Score for RAT should be 6, not %v", game.Scores[0])
	}
	// Extend the T on the board downwards to make TEAS
	move = rackTiles(t, game, 1, "EAS")
	// A disconnected move is rejected
	if err := game.MakeTileMove(2, 2, false, move); err == nil {
		t.Errorf("Accepted disconnected move")
	}
	// A move that runs off the board is rejected
	if err := game.MakeTileMove(13, 2, false, move); err == nil {
		t.Errorf("Accepted move that runs off the bottom of the board")
	}
	if err := game.MakeTileMove(2, 13, true, move); err == nil {
		t.Errorf("Accepted move that runs off the right edge of the board")
	}
	// A move that starts at an occupied square is rejected
	if err := game.MakeTileMove(7, 6, false, move); err == nil {
		t.Errorf("Accepted move starting at an occupied square")
	}
	if game.TilesOnBoard() != 3 {
		t.Errorf("Board changed after rejected move")
	}
	// The legal extension: T is at (7,8), EAS goes below it
	if err := game.MakeTileMove(8, 8, false, move); err != nil {
		t.Errorf("Legal extension move rejected: %v", err)
	}
	if game.TilesOnBoard() != 6 {
		t.Errorf("Board should have 6 tiles after extension move")
	}
	if game.Bag.TileCount() != 100-7-7-3-3 {
		t.Errorf("Bag should have 80 tiles after 3+3 tiles have been laid down")
	}
	if game.PlayerToMove() != 0 {
		t.Errorf("PlayerToMove should be 0 after correct move")
	}
	// TEAS is 1+2+1+1: the E lands on a double letter square
	if game.Scores[1] != 5 {
		t.Errorf("Score for TEAS should be 5, not %v", game.Scores[1])
	}
	// A word that is not in the dictionary is rejected even when
	// the placement is structurally sound
	move = rackTiles(t, game, 0, "NI")
	if err := game.MakeTileMove(9, 9, true, move); err == nil {
		t.Errorf("Accepted move forming a word that is not in the dictionary")
	}
	// Check a few hand-crafted, buggy TileMoves
	board := &game.Board
	cover := Cover{'E', 'E'}
	// Disconnected single tile
	tileMove := NewTileMove(board, Covers{{1, 1}: cover})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted disconnected single-tile move")
	}
	// Noncontiguous move
	tileMove = NewTileMove(board, Covers{
		{10, 8}: cover,
		{12, 8}: cover,
	})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted noncontiguous move")
	}
	// Nonlinear move
	tileMove = NewTileMove(board, Covers{
		{5, 6}: cover,
		{6, 8}: cover,
	})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted nonlinear move")
	}
	// Covering an already occupied square
	tileMove = NewTileMove(board, Covers{
		{7, 6}: cover,
		{7, 5}: cover,
	})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted cover of already occupied square")
	}
	// Empty moves
	tileMove = &TileMove{}
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted empty move")
	}
	tileMove = NewTileMove(board, Covers{})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted empty move")
	}
	// Covering nonexistent squares
	tileMove = NewTileMove(board, Covers{
		{-1, 6}: cover,
		{0, 6}:  cover,
	})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted cover of nonexistent square")
	}
	tileMove = NewTileMove(board, Covers{
		{BoardSize - 1, 6}: cover,
		{BoardSize, 6}:     cover,
	})
	if err := game.Apply(tileMove); err == nil {
		t.Errorf("Accepted cover of nonexistent square")
	}
	// Structurally valid placements are identified correctly,
	// without dictionary validation
	tileMove = NewUncheckedTileMove(board, Covers{
		{7, 5}: cover,
		{7, 9}: cover,
	})
	if !tileMove.IsValid(game) {
		t.Errorf("Move is incorrectly seen as not valid")
	}
	if !tileMove.Horizontal {
		t.Errorf("Move is incorrectly identified as being vertical")
	}
	tileMove = NewUncheckedTileMove(board, Covers{
		{6, 6}: cover,
		{8, 6}: cover,
	})
	if !tileMove.IsValid(game) {
		t.Errorf("Move is incorrectly seen as not valid")
	}
	if tileMove.Horizontal {
		t.Errorf("Move is incorrectly identified as being horizontal")
	}
	// A single cover below the S of TEAS has a vertical crossing
	// only, so the move is vertical
	tileMove = NewUncheckedTileMove(board, Covers{{11, 8}: cover})
	if !tileMove.IsValid(game) {
		t.Errorf("Move is incorrectly seen as not valid")
	}
	if tileMove.Horizontal {
		t.Errorf("Move is incorrectly identified as being horizontal")
	}
	// At (8,7) the horizontal crossing (the E of TEAS) and the
	// vertical crossing (the A of RAT) are equally long; the tie
	// goes to horizontal
	tileMove = NewUncheckedTileMove(board, Covers{{8, 7}: cover})
	if !tileMove.IsValid(game) {
		t.Errorf("Move is incorrectly seen as not valid")
	}
	if !tileMove.Horizontal {
		t.Errorf("Move is incorrectly identified as being vertical")
	}
	// Make a pass move for player 0
	if err := game.MakePassMove(); err != nil {
		t.Errorf("MakePassMove returned %v", err)
	}
	if game.PlayerToMove() != 1 {
		t.Errorf("PlayerToMove should be 1 after pass move")
	}
	if game.Bag.TileCount() != 100-7-7-3-3 {
		t.Errorf("Bag should still have 80 tiles after pass move")
	}
}

func TestFailedApplyLeavesGameUnchanged(t *testing.T) {
	game := NewGame(newGameGraph(t))
	rigRacks(t, game, "EATSRIN", "EATSRIN")
	// NINE needs two N tiles but the rack holds only one. The
	// move is structurally valid and forms a dictionary word, so
	// it fails only during application; the board and the rack
	// must be untouched afterwards.
	covers := Covers{
		{7, 5}: {'N', 'N'},
		{7, 6}: {'I', 'I'},
		{7, 7}: {'N', 'N'},
		{7, 8}: {'E', 'E'},
	}
	move := NewTileMove(&game.Board, covers)
	var imerr *IllegalMoveError
	if err := game.Apply(move); !errors.As(err, &imerr) {
		t.Errorf("Expected an IllegalMoveError, got %v", err)
	}
	if n := game.TilesOnBoard(); n != 0 {
		t.Errorf("Board has %v tiles after a failed Apply; expected 0", n)
	}
	if n := game.Racks[0].NumTiles(); n != RackSize {
		t.Errorf("Rack has %v tiles after a failed Apply; expected %v",
			n, RackSize)
	}
	if game.PlayerToMove() != 0 {
		t.Errorf("PlayerToMove changed after a failed Apply")
	}
	if len(game.MoveList) != 0 {
		t.Errorf("Move list grew after a failed Apply")
	}
}

func TestExchangeMove(t *testing.T) {
	game := NewGame(newGameGraph(t))
	rack := game.Racks[0].AsString()
	if err := game.Apply(NewExchangeMove(rack)); err != nil {
		t.Errorf("Legal exchange move rejected: %v", err)
	}
	if game.Racks[0].NumTiles() != RackSize {
		t.Errorf("Rack should be full after exchange")
	}
	if game.Bag.TileCount() != 100-7-7 {
		t.Errorf("Bag count should be unchanged by an exchange")
	}
	if game.PlayerToMove() != 1 {
		t.Errorf("PlayerToMove should be 1 after exchange move")
	}
	// Exchanging letters that are not in the rack is rejected
	if err := game.Apply(NewExchangeMove("??????")); err == nil {
		t.Errorf("Accepted exchange of letters not in the rack")
	}
}

func TestFinish(t *testing.T) {
	game := NewGame(newGameGraph(t))
	if err := game.Finish(); err == nil {
		t.Errorf("Finish should fail while the game is in progress")
	}
	rigRacks(t, game, "EATSRIN", "EATSRIN")
	// Force the game to be over through successive zero-point moves
	game.NumPassMoves = MaxPassMoves
	if !game.IsOver() {
		t.Errorf("Game should be over after %v consecutive pass moves", MaxPassMoves)
	}
	if err := game.Finish(); err != nil {
		t.Errorf("Finish returned %v", err)
	}
	// Neither rack is empty, so each player loses the value of
	// their own rack, which is 7 for EATSRIN
	if game.Scores[0] != -7 || game.Scores[1] != -7 {
		t.Errorf("Final scores should be -7 : -7, not %v : %v",
			game.Scores[0], game.Scores[1])
	}
	if len(game.MoveList) != 2 {
		t.Errorf("Final adjustments should add 2 moves to the move list")
	}
}

func TestRobot(t *testing.T) {
	robot := NewHighScoreRobot()
	if robot == nil {
		t.Errorf("Unable to create HighScoreRobot")
	}
	game := NewGame(newGameGraph(t))
	game.SetPlayerNames("Alice", "Bob")
	// Go through 8 moves (4 per player)
	const numMoves = 8
	for i := 0; i < numMoves; i++ {
		state := game.State()
		move := robot.GenerateMove(state)
		if move == nil || !move.IsValid(game) {
			t.Errorf("Invalid move generated")
		} else if err := game.ApplyValid(move); err != nil {
			t.Errorf("ApplyValid returned %v", err)
		}
	}
	if len(game.MoveList) != numMoves {
		t.Errorf("Incorrect number of moves recorded")
	}
}

func TestRobotPicksHighestScore(t *testing.T) {
	g, err := BuildGaddag([]string{"AT", "CAT", "CATS"})
	if err != nil {
		t.Fatalf("could not build word graph: %v", err)
	}
	rack, err := parseRack("CATS", EnglishTileSet)
	if err != nil {
		t.Fatalf("could not parse rack: %v", err)
	}
	state := NewState(g, EnglishTileSet, NewBoard(), rack)
	for _, robot := range []*RobotWrapper{
		NewHighScoreRobot(),
		NewOneOfNBestRobot(3),
	} {
		move := robot.GenerateMove(state)
		tm, ok := move.(*TileMove)
		if !ok {
			t.Fatalf("Expected a TileMove, got %T", move)
		}
		// All top-scoring moves play the whole rack
		if tm.Word != "CATS" {
			t.Errorf("Expected the robot to play CATS, not %v", tm.Word)
		}
		if tm.Score(state) != 12 {
			t.Errorf("Expected a score of 12, not %v", tm.Score(state))
		}
	}
}

func TestCoord(t *testing.T) {
	if c := Coord(7, 7, true); c != "8H" {
		t.Errorf("Horizontal coordinate should be 8H, not %v", c)
	}
	if c := Coord(7, 7, false); c != "H8" {
		t.Errorf("Vertical coordinate should be H8, not %v", c)
	}
	if c := Coord(14, 0, true); c != "15A" {
		t.Errorf("Horizontal coordinate should be 15A, not %v", c)
	}
	if c := Coord(-1, 0, true); c != "" {
		t.Errorf("Out-of-range coordinate should be empty, not %v", c)
	}
	if c := Coord(0, BoardSize, false); c != "" {
		t.Errorf("Out-of-range coordinate should be empty, not %v", c)
	}
}

func TestStringify(t *testing.T) {
	// Stringify the game (no checks but at least this enhances coverage)
	game := NewGame(newGameGraph(t))
	if s := game.String(); s == "" {
		t.Errorf("Game should stringify to something")
	}
	if rows := game.Board.ToStrings(); len(rows) != BoardSize {
		t.Errorf("Board should stringify to %v rows", BoardSize)
	}
	// Every move type stringifies through the Move interface
	for _, move := range []Move{
		NewPassMove(),
		NewExchangeMove(game.Racks[0].AsString()),
		NewUncheckedTileMove(&game.Board, Covers{{7, 7}: {'A', 'A'}}),
	} {
		if s := move.String(); s == "" {
			t.Errorf("Move should stringify to something")
		}
	}
}

func BenchmarkRobot(b *testing.B) {
	gaddag := newGameGraph(b)
	// Generate a sequence of moves and responses
	simulateGame := func(robot *RobotWrapper) {
		game := NewGame(gaddag)
		game.SetPlayerNames("Alice", "Bob")
		for i := 0; i < 20 && !game.IsOver(); i++ {
			state := game.State()
			move := robot.GenerateMove(state)
			if err := game.ApplyValid(move); err != nil {
				b.Fatalf("ApplyValid returned %v", err)
			}
		}
	}
	robot := NewHighScoreRobot()
	for i := 0; i < b.N; i++ {
		simulateGame(robot)
	}
}
