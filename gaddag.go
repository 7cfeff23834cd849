// gaddag.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements the GADDAG automaton (Gordon 1994) which
// encodes the dictionary of valid words. Every word is stored once
// per rotation point, so that a traversal can start anywhere inside
// a word, extend to the left, pivot on the separator symbol and
// finish to the right. This is the data structure that drives
// anchor-based move generation.

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
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// Separator marks the pivot point between the reversed prefix and
// the forward suffix of a stored word rotation
const Separator = '+'

// NoNode is returned by NextNode when no matching arc exists
const NoNode = int32(-1)

// EnglishAlphabet contains the letters recognized by the engine,
// in scoring order
const EnglishAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet stores the letter set of a Gaddag in useful formats
type Alphabet struct {
	asString string
	asRunes  []rune
	bitMap   map[rune]uint
	allSet   uint
}

// Init initializes an Alphabet from a string of unique letters
func (a *Alphabet) Init(chars string) {
	a.asString = chars
	a.asRunes = []rune(chars)
	a.bitMap = make(map[rune]uint, len(a.asRunes))
	a.allSet = uint(0)
	for i, r := range a.asRunes {
		bit := uint(1) << uint(i)
		a.bitMap[r] = bit
		a.allSet |= bit
	}
}

// Length returns the number of letters in the Alphabet
func (a *Alphabet) Length() int {
	return len(a.asRunes)
}

// Contains returns true if the letter is a member of the Alphabet
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.bitMap[r]
	return ok
}

// MakeSet converts a list of letters to a bitmapped set of letters
func (a *Alphabet) MakeSet(runes []rune) uint {
	s := uint(0)
	for _, r := range runes {
		if bit, ok := a.bitMap[r]; ok {
			s |= bit
		}
	}
	return s
}

// Member checks whether a letter is in a bitmapped set of letters
func (a *Alphabet) Member(r rune, set uint) bool {
	bit, ok := a.bitMap[r]
	return ok && (set&bit) != 0
}

// String returns the letters of the Alphabet as a contiguous string
func (a *Alphabet) String() string {
	return a.asString
}

// node is a state in the automaton, referring to a contiguous
// span of outgoing arcs in the Gaddag's arc array
type node struct {
	firstArc int32
	numArcs  int32
	terminal bool
}

// arc is a single labeled transition between two nodes
type arc struct {
	sym  rune
	next int32
}

// Gaddag is a minimized, flattened GADDAG automaton. The zero
// value is not usable; obtain instances via BuildGaddag or
// DeserializeGaddag.
type Gaddag struct {
	alphabet Alphabet
	nodes    []node
	arcs     []arc
	root     int32
	// Longest word stored in the automaton
	maxWordLen int
	// Number of words inserted when the automaton was built
	wordCount int
	// Cached cross-check sets, keyed by the surrounding letter
	// fragments of the square being checked
	crossCache crossCache
}

// crossCache is a bounded LRU cache for cross-check sets. It is
// indexed by the left and right letter fragments surrounding an
// empty square, concatenated with a '?' in between.
type crossCache struct {
	sync.Mutex
	lru *simplelru.LRU
}

func (cc *crossCache) init(size int) {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(err)
	}
	cc.lru = lru
}

// lookup returns a cached cross-check set, or computes it via
// the given function and caches the result
func (cc *crossCache) lookup(key string, compute func() uint) uint {
	cc.Lock()
	defer cc.Unlock()
	if cached, ok := cc.lru.Get(key); ok {
		return cached.(uint)
	}
	set := compute()
	cc.lru.Add(key, set)
	return set
}

// Alphabet returns the alphabet of the Gaddag
func (g *Gaddag) Alphabet() *Alphabet {
	return &g.alphabet
}

// Root returns the root node index of the automaton
func (g *Gaddag) Root() int32 {
	return g.root
}

// NumNodes returns the number of nodes in the minimized automaton
func (g *Gaddag) NumNodes() int {
	return len(g.nodes)
}

// NumArcs returns the number of arcs in the minimized automaton
func (g *Gaddag) NumArcs() int {
	return len(g.arcs)
}

// WordCount returns the number of words the automaton was built from
func (g *Gaddag) WordCount() int {
	return g.wordCount
}

// MaxWordLen returns the length of the longest stored word
func (g *Gaddag) MaxWordLen() int {
	return g.maxWordLen
}

// NextNode returns the node reached from the given node via an arc
// labeled with the given symbol, or NoNode if there is no such arc
func (g *Gaddag) NextNode(state int32, sym rune) int32 {
	nd := &g.nodes[state]
	first, last := nd.firstArc, nd.firstArc+nd.numArcs
	for i := first; i < last; i++ {
		if g.arcs[i].sym == sym {
			return g.arcs[i].next
		}
	}
	return NoNode
}

// IsTerminal returns true if the given node completes a stored
// word rotation
func (g *Gaddag) IsTerminal(state int32) bool {
	return g.nodes[state].terminal
}

// forEachArc calls fn for each outgoing arc of the given node
func (g *Gaddag) forEachArc(state int32, fn func(sym rune, next int32)) {
	nd := &g.nodes[state]
	first, last := nd.firstArc, nd.firstArc+nd.numArcs
	for i := first; i < last; i++ {
		fn(g.arcs[i].sym, g.arcs[i].next)
	}
}

// Find attempts to find a word in the Gaddag, returning true if
// it is present in the underlying dictionary
func (g *Gaddag) Find(word string) bool {
	if g == nil || len(word) == 0 {
		return false
	}
	var fn FindNavigator
	fn.Init(word)
	g.Navigate(&fn)
	return fn.found
}

// Match returns all words in the dictionary that match the given
// pattern, where '?' stands for any letter of the alphabet
func (g *Gaddag) Match(pattern string) []string {
	if g == nil || len(pattern) == 0 {
		return nil
	}
	var mn MatchNavigator
	mn.Init(pattern)
	g.Navigate(&mn)
	return mn.results
}

// Permute returns all words that can be formed by using all or some
// of the given rack tiles, where '?' stands for a blank tile.
// Only words of at least minLen letters are returned.
func (g *Gaddag) Permute(rack string, minLen int) []string {
	if g == nil || len(rack) == 0 {
		return nil
	}
	var pn PermutationNavigator
	pn.Init(rack, minLen)
	g.Navigate(&pn)
	return pn.results
}

// walk advances through the automaton reading the given letters
// in order, returning the node reached or NoNode
func (g *Gaddag) walk(state int32, letters []rune) int32 {
	for _, r := range letters {
		state = g.NextNode(state, r)
		if state == NoNode {
			return NoNode
		}
	}
	return state
}

// CrossSet returns the set of letters that can legally be placed on
// an empty square, given the contiguous letter fragments immediately
// to its left and right (or above and below). An all-ones set is
// returned when the square has no adjacent letters on this axis.
func (g *Gaddag) CrossSet(left, right []rune) uint {
	if len(left) == 0 && len(right) == 0 {
		// No constraining neighbors
		return g.alphabet.allSet
	}
	// Cache cross-check sets since the same fragment context tends
	// to recur many times during move generation
	var sb strings.Builder
	sb.Grow(len(left) + len(right) + 1)
	for _, r := range left {
		sb.WriteRune(r)
	}
	sb.WriteByte('?')
	for _, r := range right {
		sb.WriteRune(r)
	}
	return g.crossCache.lookup(sb.String(),
		func() uint {
			return g.calcCrossSet(left, right)
		},
	)
}

// calcCrossSet computes a cross-check set from scratch. A stored
// rotation for the word left+L+right, pivoting just after L, reads
// L first, then the reversed left fragment, then the separator and
// the right fragment. We therefore try every arc out of the root as
// the candidate letter L and follow the rest of the path.
func (g *Gaddag) calcCrossSet(left, right []rune) uint {
	revLeft := reverseRunes(left)
	set := uint(0)
	g.forEachArc(g.root, func(sym rune, next int32) {
		if sym == Separator {
			return
		}
		state := g.walk(next, revLeft)
		if state == NoNode {
			return
		}
		if len(right) == 0 {
			// The candidate letter ends the word; the full
			// reversed word is stored without a separator
			if g.IsTerminal(state) {
				set |= g.alphabet.bitMap[sym]
			}
			return
		}
		state = g.NextNode(state, Separator)
		if state == NoNode {
			return
		}
		state = g.walk(state, right)
		if state != NoNode && g.IsTerminal(state) {
			set |= g.alphabet.bitMap[sym]
		}
	})
	return set
}

// reverseRunes returns a new slice with the runes in reverse order
func reverseRunes(s []rune) []rune {
	result := make([]rune, len(s))
	for i, r := range s {
		result[len(s)-1-i] = r
	}
	return result
}
