// rack.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements the player rack: a set of up to seven
// tile slots, with helpers to fill it from the bag and to view
// its contents as runes and bit-mapped letter sets.

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

// RackSize contains the number of slots in the Rack
const RackSize = 7

// Rack represents a player's rack of Tiles
type Rack struct {
	Slots [RackSize]Square
	// Letters is a map of letters in the rack with their count,
	// with blank tiles being represented by '?'
	Letters map[rune]int
}

// Init initializes an empty rack
func (rack *Rack) Init() {
	rack.Letters = make(map[rune]int)
	for i := 0; i < RackSize; i++ {
		sq := &rack.Slots[i]
		sq.Row = -1
		sq.Col = i
		sq.LetterMultiplier = 1
		sq.WordMultiplier = 1
	}
}

// NewRack returns an initialized, empty Rack
func NewRack() *Rack {
	rack := &Rack{}
	rack.Init()
	return rack
}

// String returns a printable string representation of a Rack
func (rack *Rack) String() string {
	var sb strings.Builder
	for i := 0; i < RackSize; i++ {
		sb.WriteString(fmt.Sprintf("%v ", &rack.Slots[i]))
	}
	return sb.String()
}

// Fill draws tiles from the bag to fill a rack.
// Returns false if unable to fill all empty slots.
func (rack *Rack) Fill(bag *Bag) bool {
	for i := 0; i < RackSize; i++ {
		sq := &rack.Slots[i]
		if sq.Tile == nil {
			// Empty slot: draw a tile from the bag
			sq.Tile = bag.DrawTile()
			if sq.Tile == nil {
				// The bag is empty: can't fill the rack
				return false
			}
			rack.Letters[sq.Tile.Letter]++
		}
	}
	return true
}

// FillByLetters draws tiles identified by the given letters
// from the bag to fill the rack, if possible
func (rack *Rack) FillByLetters(bag *Bag, letters []rune) bool {
	for i := 0; i < RackSize && len(letters) > 0; i++ {
		sq := &rack.Slots[i]
		if sq.Tile == nil {
			if sq.Tile = bag.DrawTileByLetter(letters[0]); sq.Tile == nil {
				// A tile with this letter is not in the bag
				return false
			}
			rack.Letters[letters[0]]++
			letters = letters[1:]
		}
	}
	return len(letters) == 0
}

// AsRunes returns the tiles in the Rack as a list of runes
func (rack *Rack) AsRunes() []rune {
	runes := make([]rune, 0, RackSize)
	for i := 0; i < RackSize; i++ {
		sq := &rack.Slots[i]
		if sq.Tile != nil {
			runes = append(runes, sq.Tile.Letter)
		}
	}
	return runes
}

// AsString returns the tiles in the Rack as a contiguous string
func (rack *Rack) AsString() string {
	return string(rack.AsRunes())
}

// AsSet returns the rack as a bit-mapped set of runes.
// If the rack contains a blank tile ('?'), the bitmap
// will have all bits set.
func (rack *Rack) AsSet(alphabet *Alphabet) uint {
	if rack.ContainsBlank() {
		return alphabet.allSet
	}
	return alphabet.MakeSet(rack.AsRunes())
}

// NumTiles returns the number of tiles in the Rack
func (rack *Rack) NumTiles() int {
	count := 0
	for i := 0; i < RackSize; i++ {
		if rack.Slots[i].Tile != nil {
			count++
		}
	}
	return count
}

// IsEmpty returns true if the Rack is empty
func (rack *Rack) IsEmpty() bool {
	return rack.NumTiles() == 0
}

// ContainsBlank returns true if the Rack holds a blank tile
func (rack *Rack) ContainsBlank() bool {
	return rack.Letters['?'] > 0
}

// HasTile returns true if the given Tile is in the Rack
func (rack *Rack) HasTile(tile *Tile) bool {
	if tile == nil {
		return false
	}
	for i := 0; i < RackSize; i++ {
		if rack.Slots[i].Tile == tile {
			return true
		}
	}
	return false
}

// FindTile finds a tile with the given letter (or '?') in the
// rack and returns a pointer to it, or nil if not found
func (rack *Rack) FindTile(letter rune) *Tile {
	for i := 0; i < RackSize; i++ {
		sq := &rack.Slots[i]
		if sq.Tile != nil && sq.Tile.Letter == letter {
			return sq.Tile
		}
	}
	return nil
}

// RemoveTile removes a tile from a Rack
func (rack *Rack) RemoveTile(tile *Tile) bool {
	if tile == nil {
		return false
	}
	for i := 0; i < RackSize; i++ {
		sq := &rack.Slots[i]
		if sq.Tile == tile {
			// Found the slot with the tile:
			// remove it from the rack
			sq.Tile = nil
			rack.Letters[tile.Letter]--
			return true
		}
	}
	// Tile was not found in the rack
	return false
}

// ReturnToBag returns the tiles in the Rack to the given Bag
func (rack *Rack) ReturnToBag(bag *Bag) {
	for i := 0; i < RackSize; i++ {
		sq := &rack.Slots[i]
		if sq.Tile != nil {
			bag.ReturnTile(sq.Tile)
			rack.Letters[sq.Tile.Letter]--
			sq.Tile = nil
		}
	}
}

// Extract obtains the given number of tiles from the rack,
// returning them as a list. If a tile is blank,
// assign the given meaning to it.
func (rack *Rack) Extract(numTiles int, meaning rune) []*Tile {
	ex := make([]*Tile, 0, numTiles)
	for i := 0; i < RackSize && numTiles > 0; i++ {
		tile := rack.Slots[i].Tile
		if tile != nil {
			if tile.Letter == '?' {
				tile.Meaning = meaning
			}
			ex = append(ex, tile)
			numTiles--
		}
	}
	return ex
}
