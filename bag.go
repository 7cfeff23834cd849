// bag.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements the tile bag and the standard English
// tile set with letter scores and counts.

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
	"math/rand"
	"strings"
)

// BingoBonus is the score bonus for playing a full rack in one move
const BingoBonus = 50

// Bag is a randomized list of tiles, initialized from a tile
// set, that is yet to be drawn and used in a game
type Bag []*Tile

// TileSet is a static list of tiles, used as a prototype
// to copy new Bags from
type TileSet struct {
	Tiles  []Tile
	Scores map[rune]int
}

// initTileSet makes a complete tile set, given a scoring map
// and a map of letters and their associated counts
func initTileSet(scores map[rune]int, tiles map[rune]int) *TileSet {
	// Count the tiles in the tile set
	numTiles := 0
	for _, count := range tiles {
		numTiles += count
	}
	// Make a tile slice/array to hold the entire tile set
	tileSet := make([]Tile, numTiles)
	// Assign each tile in the tile set
	i := 0
	for letter, count := range tiles {
		score := scores[letter]
		for j := 0; j < count; j++ {
			t := &tileSet[i]
			i++
			t.Letter = letter
			t.Meaning = letter
			t.Score = score
		}
	}
	if i != numTiles {
		panic("Did not assign all tiles in tile set")
	}
	return &TileSet{Tiles: tileSet, Scores: scores}
}

// initEnglishTileSet creates the standard English
// SCRABBLE(tm) tile set
func initEnglishTileSet() *TileSet {

	// The scores of each letter
	scores := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
		'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
		'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
		'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
		'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
		'Z': 10, '?': 0,
	}

	// The number of tiles for each letter
	tiles := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1, '?': 2,
	}

	return initTileSet(scores, tiles)
}

// EnglishTileSet is the standard English SCRABBLE(tm) tile set
var EnglishTileSet = initEnglishTileSet()

// makeBag initializes a bag from a tile set and returns a
// reference to it. Each bag gets its own copy of the tiles, so
// that blank meanings and played-by markers assigned during a
// game do not leak between games.
func makeBag(tileSet *TileSet) *Bag {
	bag := make(Bag, len(tileSet.Tiles))
	for i := range bag {
		tile := tileSet.Tiles[i]
		bag[i] = &tile
	}
	return &bag
}

// DrawTile pops one tile from the (randomized) bag
// and returns it
func (bag *Bag) DrawTile() *Tile {
	if bag == nil || len(*bag) == 0 {
		// No tiles left in the bag
		return nil
	}
	// Find a random tile in the bag and return it
	i := rand.Intn(len(*bag))
	tile := (*bag)[i]
	*bag = append((*bag)[:i], (*bag)[i+1:]...)
	return tile
}

// DrawTileByLetter draws the first tile with the given letter
// from the bag, or nil if no such tile is left
func (bag *Bag) DrawTileByLetter(letter rune) *Tile {
	if bag == nil {
		return nil
	}
	for i, tile := range *bag {
		if tile.Letter == letter {
			*bag = append((*bag)[:i], (*bag)[i+1:]...)
			return tile
		}
	}
	return nil
}

// ReturnTile returns a previously drawn Tile to the Bag
func (bag *Bag) ReturnTile(tile *Tile) {
	if bag == nil || tile == nil {
		return
	}
	// A returned blank loses its assigned meaning
	if tile.Letter == '?' {
		tile.Meaning = '?'
	}
	*bag = append(*bag, tile)
}

// String returns a string representation of a Bag
func (bag *Bag) String() string {
	if bag == nil {
		return ""
	}
	var sb strings.Builder
	if len(*bag) == 0 {
		sb.WriteString("Empty")
	} else {
		sb.WriteString(fmt.Sprintf("(%v tiles): ", bag.TileCount()))
		for i := 0; i < len(*bag); i++ {
			sb.WriteString(fmt.Sprintf("%v ", (*bag)[i]))
		}
	}
	return sb.String()
}

// TileCount returns the number of tiles in a Bag
func (bag *Bag) TileCount() int {
	if bag == nil {
		return 0
	}
	return len(*bag)
}

// ExchangeAllowed returns true if there are at least RackSize
// tiles left in the bag, thus allowing exchange of tiles
func (bag *Bag) ExchangeAllowed() bool {
	return bag != nil && len(*bag) >= RackSize
}
