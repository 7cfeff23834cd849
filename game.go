// game.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements the Game and GameState types that tie a
// Board, Racks, a Bag and a Gaddag dictionary together into an
// in-progress game between two players.

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

// A game is over after this many consecutive zero-point moves
const MaxPassMoves = 6

// Game is a container for an in-progress game between
// two players, having a Board and two Racks, as well
// as a Bag and a list of Moves made so far. We also keep
// track of the number of Tiles that have been placed on
// the Board.
type Game struct {
	PlayerNames [2]string
	Scores      [2]int
	Board       Board
	Racks       [2]Rack
	Bag         *Bag
	MoveList    []Move
	// The word graph to use in the game
	Gaddag *Gaddag
	// The tile set the bag was copied from
	TileSet *TileSet
	// Number of consecutive zero-point moves
	// (passes, exchanges and challenges)
	NumPassMoves int
}

// GameState contains the bare minimum of information
// that is needed for a robot player to decide on a move
// in a Game.
type GameState struct {
	Gaddag  *Gaddag
	TileSet *TileSet
	Board   *Board
	Rack    *Rack // The rack of the player whose move it is
	// True if not enough tiles are left in the bag for an
	// exchange move
	exchangeForbidden bool
}

// NewState creates a GameState from its constituent parts.
// Useful for generating moves for an arbitrary board and rack
// without a full Game.
func NewState(gaddag *Gaddag, tileSet *TileSet, board *Board, rack *Rack) *GameState {
	return &GameState{
		Gaddag:  gaddag,
		TileSet: tileSet,
		Board:   board,
		Rack:    rack,
	}
}

// Init initializes a new game with a fresh bag copied
// from the given tile set, and draws the player racks
// from the bag
func (game *Game) Init(tileSet *TileSet, gaddag *Gaddag) {
	game.Board.Init()
	game.Racks[0].Init()
	game.Racks[1].Init()
	game.Bag = makeBag(tileSet)
	game.Racks[0].Fill(game.Bag)
	game.Racks[1].Fill(game.Bag)
	game.MoveList = make([]Move, 0, 30)
	game.Gaddag = gaddag
	game.TileSet = tileSet
}

// NewGame instantiates a new Game with the standard English
// tile set and the given word graph, and returns a reference
// to it
func NewGame(gaddag *Gaddag) *Game {
	game := &Game{}
	game.Init(EnglishTileSet, gaddag)
	return game
}

// State returns a new GameState instance describing the state of
// the game in a minimal manner so that a robot player can decide
// on a move
func (game *Game) State() *GameState {
	player := game.PlayerToMove()
	return &GameState{
		Gaddag:            game.Gaddag,
		TileSet:           game.TileSet,
		Board:             &game.Board,
		Rack:              &game.Racks[player],
		exchangeForbidden: !game.Bag.ExchangeAllowed(),
	}
}

// TileAt is a convenience function for returning the Tile at
// a given coordinate on the Game Board
func (game *Game) TileAt(row, col int) *Tile {
	return game.Board.TileAt(row, col)
}

// PlayTile moves a tile from the player's rack to the board
func (game *Game) PlayTile(tile *Tile, row, col int) bool {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		// No such square
		return false
	}
	sq := game.Board.Sq(row, col)
	if sq.Tile != nil {
		// We already have a tile in this location
		return false
	}
	playerToMove := game.PlayerToMove()
	if !game.Racks[playerToMove].RemoveTile(tile) {
		// This tile isn't in the rack
		return false
	}
	if tile.Meaning == '?' {
		// Tile must have an associated meaning when played
		return false
	}
	if tile.Letter != '?' {
		tile.Meaning = tile.Letter
	}
	tile.PlayedBy = playerToMove
	sq.Tile = tile
	game.Board.NumTiles++
	return true
}

// TilesOnBoard returns the number of tiles already laid down
// on the board
func (game *Game) TilesOnBoard() int {
	return game.Board.NumTiles
}

// SetPlayerNames sets the names of the two players
func (game *Game) SetPlayerNames(player0, player1 string) {
	game.PlayerNames[0] = player0
	game.PlayerNames[1] = player1
}

// PlayerToMove returns 0 or 1 depending on which player's move it is
func (game *Game) PlayerToMove() int {
	return len(game.MoveList) % 2
}

// MakePassMove appends a pass move to the Game's move list
func (game *Game) MakePassMove() error {
	return game.Apply(NewPassMove())
}

// MakeTileMove creates a tile move starting at the given square,
// in the given direction, laying down the given tiles from the
// player's rack, and applies it to the Game
func (game *Game) MakeTileMove(row, col int, horizontal bool, tiles []*Tile) error {
	// Basic sanity checks
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize ||
		len(tiles) < 1 || len(tiles) > RackSize {
		return &IllegalMoveError{Reason: "invalid tile move parameters"}
	}
	// Check that the played tiles are actually in the player's rack
	rack := &game.Racks[game.PlayerToMove()]
	for _, tile := range tiles {
		if !rack.HasTile(tile) {
			return &IllegalMoveError{Reason: "tile not in rack"}
		}
	}
	// A tile move must start at an empty square
	if game.TileAt(row, col) != nil {
		return &IllegalMoveError{Reason: "start square already occupied"}
	}
	var rowInc, colInc int
	if horizontal {
		colInc = 1
	} else {
		rowInc = 1
	}
	covers := make(Covers)
	for _, tile := range tiles {
		if row >= BoardSize || col >= BoardSize {
			return &IllegalMoveError{Reason: "move extends off the board"}
		}
		for game.TileAt(row, col) != nil {
			// Occupied square: skip to the next one
			row += rowInc
			col += colInc
			if row >= BoardSize || col >= BoardSize {
				return &IllegalMoveError{Reason: "move extends off the board"}
			}
		}
		covers[Coordinate{row, col}] = Cover{tile.Letter, tile.Meaning}
		row += rowInc
		col += colInc
	}
	// Apply a fresh TileMove to the game
	return game.Apply(NewTileMove(&game.Board, covers))
}

// Apply validates a move, applies it to the game, appends it to
// the move list, replenishes the player's rack if needed, and
// updates scores. If the move is not legal in the current game
// position, an IllegalMoveError is returned and the game is left
// unchanged.
func (game *Game) Apply(move Move) error {
	if move == nil {
		return &IllegalMoveError{Reason: "nil move"}
	}
	if !move.IsValid(game) {
		return &IllegalMoveError{Move: move,
			Reason: "not valid in the current position"}
	}
	return game.ApplyValid(move)
}

// ApplyValid applies a move that has already been validated.
// Used by robot players, which only generate valid moves.
func (game *Game) ApplyValid(move Move) error {
	// Calculate the score before the move mutates the board
	score := move.Score(game.State())
	if err := move.Apply(game); err != nil {
		return err
	}
	// Be careful to call PlayerToMove() before appending
	// a move to the move list (this reverses the players)
	playerToMove := game.PlayerToMove()
	// Append to move list
	game.MoveList = append(game.MoveList, move)
	// Replenish the player's rack, as needed
	game.Racks[playerToMove].Fill(game.Bag)
	// Update the player's score
	game.Scores[playerToMove] += score
	return nil
}

// IsOver returns true if the Game is over: either a player has
// emptied their rack with no tiles left in the bag, or the maximum
// number of successive zero-point moves has been reached
func (game *Game) IsOver() bool {
	if game.NumPassMoves >= MaxPassMoves {
		return true
	}
	if game.Bag.TileCount() > 0 {
		return false
	}
	return game.Racks[0].IsEmpty() || game.Racks[1].IsEmpty()
}

// Finish appends the final score adjustment moves to a game that
// is over. If a player finished by emptying their rack, they
// receive double the value of the opponent's rack leave; otherwise
// each player loses the value of their own rack.
func (game *Game) Finish() error {
	if !game.IsOver() {
		return &IllegalMoveError{Reason: "game is not over"}
	}
	rackOf := func(player int) string {
		return game.Racks[player].AsString()
	}
	for ix := 0; ix < 2; ix++ {
		player := game.PlayerToMove()
		opp := 1 - player
		var move *FinalMove
		if game.Racks[player].IsEmpty() {
			move = NewFinalMove(rackOf(opp), 2)
		} else {
			move = NewFinalMove(rackOf(player), -1)
		}
		if err := game.ApplyValid(move); err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of a Game
func (game *Game) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v (%v : %v) %v\n",
		game.PlayerNames[0],
		game.Scores[0],
		game.Scores[1],
		game.PlayerNames[1],
	))
	sb.WriteString(fmt.Sprintf("%v\n", &game.Board))
	sb.WriteString(fmt.Sprintf("Rack 0: %v\n", &game.Racks[0]))
	sb.WriteString(fmt.Sprintf("Rack 1: %v\n", &game.Racks[1]))
	sb.WriteString(fmt.Sprintf("Bag: %v\n", game.Bag))
	return sb.String()
}
