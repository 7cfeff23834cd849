// gaddag_test.go
//
// Copyright (C) 2026 Scrawl Games

// This file contains tests for the word graph: construction,
// lookup, pattern matching, cross-check sets and serialization.

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal vocabulary with known extensions and hooks
var smallVocabulary = []string{"AT", "ACT", "CAT", "CATS"}

func buildSmall(t *testing.T) *Gaddag {
	t.Helper()
	g, err := BuildGaddag(smallVocabulary)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

func TestBuildGaddag(t *testing.T) {
	g := buildSmall(t)
	assert.Equal(t, len(smallVocabulary), g.WordCount())
	assert.Equal(t, 4, g.MaxWordLen())
	assert.Greater(t, g.NumNodes(), 0)
	assert.Greater(t, g.NumArcs(), 0)
	for _, word := range smallVocabulary {
		assert.True(t, g.Find(word), "did not find word '%v'", word)
	}
	// Prefixes, suffixes and rotations of stored words must not
	// be found
	for _, word := range []string{"CA", "ATS", "TAC", "TA", "C", "SCAT", ""} {
		assert.False(t, g.Find(word), "found word '%v' that is not in the graph", word)
	}
	// Duplicated input words are inserted once
	g2, err := BuildGaddag([]string{"CAT", "CAT", "AT", "CAT"})
	require.NoError(t, err)
	assert.Equal(t, 2, g2.WordCount())
	// The duplicated list describes the same language, so the
	// minimized graphs should be of identical size
	g3, err := BuildGaddag([]string{"CAT", "AT"})
	require.NoError(t, err)
	assert.Equal(t, g3.NumNodes(), g2.NumNodes())
	assert.Equal(t, g3.NumArcs(), g2.NumArcs())
}

func TestBuildGaddagEmpty(t *testing.T) {
	// An empty word list yields a degenerate automaton with a
	// root node only, recognizing no words
	g, err := BuildGaddag(nil)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 0, g.WordCount())
	assert.Equal(t, 1, g.NumNodes())
	assert.Equal(t, 0, g.NumArcs())
	assert.False(t, g.Find("AT"))
	assert.Empty(t, g.Permute("TAC", MinWordLen))
}

func TestBuildGaddagErrors(t *testing.T) {
	var cerr *ConstructionError
	// Single-letter word
	_, err := BuildGaddag([]string{"CAT", "A"})
	require.Error(t, err)
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "A", cerr.Word)
	// Word longer than the board dimension
	_, err = BuildGaddag([]string{strings.Repeat("A", BoardSize+1)})
	require.Error(t, err)
	assert.True(t, errors.As(err, &cerr))
	// Letter outside the alphabet
	_, err = BuildGaddag([]string{"CAT", "caT"})
	require.Error(t, err)
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "caT", cerr.Word)
}

func TestPermute(t *testing.T) {
	g := buildSmall(t)
	// All words formable from subsets of the rack
	assert.Equal(t, []string{"ACT", "AT", "CAT"}, g.Permute("TAC", MinWordLen))
	assert.Equal(t, []string{"ACT", "AT", "CAT", "CATS"}, g.Permute("TACS", MinWordLen))
	// A blank tile stands in for any letter
	assert.Equal(t, []string{"AT"}, g.Permute("?T", MinWordLen))
	// A rack with no usable subset
	assert.Empty(t, g.Permute("XQZ", MinWordLen))
	// The minimum length limit is honored
	assert.Equal(t, []string{"CATS"}, g.Permute("TACS", 4))
}

func TestMatch(t *testing.T) {
	g := buildSmall(t)
	assert.Equal(t, []string{"CAT"}, g.Match("?AT"))
	assert.Equal(t, []string{"CATS"}, g.Match("CAT?"))
	assert.Equal(t, []string{"AT"}, g.Match("??"))
	assert.Equal(t, []string{"AT"}, g.Match("AT"))
	assert.Empty(t, g.Match("?X?"))
	assert.Empty(t, g.Match("RAT"))
}

func TestCrossSets(t *testing.T) {
	g := buildSmall(t)
	alphabet := g.Alphabet()
	// Left fragment only: CAT? -> S
	set := g.CrossSet([]rune("CAT"), nil)
	assert.True(t, alphabet.Member('S', set))
	assert.False(t, alphabet.Member('A', set))
	assert.False(t, alphabet.Member('T', set))
	// Right fragment only: ?T -> A
	set = g.CrossSet(nil, []rune("T"))
	assert.True(t, alphabet.Member('A', set))
	assert.False(t, alphabet.Member('C', set))
	// Fragments on both sides: C?T -> A
	set = g.CrossSet([]rune("C"), []rune("T"))
	assert.True(t, alphabet.Member('A', set))
	assert.False(t, alphabet.Member('S', set))
	// No neighbors: every letter is allowed
	set = g.CrossSet(nil, nil)
	assert.True(t, alphabet.Member('Q', set))
	assert.True(t, alphabet.Member('Z', set))
	// A fragment that no letter can extend
	set = g.CrossSet([]rune("TX"), nil)
	assert.Equal(t, uint(0), set)
	// Repeated lookups are served from the cache and must return
	// the same result
	assert.Equal(t, g.CrossSet([]rune("CAT"), nil), g.CrossSet([]rune("CAT"), nil))
}

func TestBitMaps(t *testing.T) {
	// Test bit-mapped sets of runes. Only runes that are already
	// in the alphabet can occur in a bit-mapped set.
	g := buildSmall(t)
	alphabet := g.Alphabet()
	assert.Equal(t, len(EnglishAlphabet), alphabet.Length())
	set := alphabet.MakeSet([]rune{'C', 'A', 'T', 'S', 'S'})
	assert.True(t, alphabet.Member('C', set))
	assert.True(t, alphabet.Member('S', set))
	assert.False(t, alphabet.Member('B', set))
	assert.False(t, alphabet.Member('c', set))
	// Test smiley face
	assert.False(t, alphabet.Member('😄', set))
}

func TestSerialization(t *testing.T) {
	g := buildSmall(t)
	data, err := g.MarshalBinary()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var g2 Gaddag
	require.NoError(t, g2.UnmarshalBinary(data))
	assert.Equal(t, g.WordCount(), g2.WordCount())
	assert.Equal(t, g.MaxWordLen(), g2.MaxWordLen())
	assert.Equal(t, g.NumNodes(), g2.NumNodes())
	assert.Equal(t, g.NumArcs(), g2.NumArcs())
	for _, word := range smallVocabulary {
		assert.True(t, g2.Find(word), "did not find word '%v' after round trip", word)
	}
	assert.False(t, g2.Find("TAC"))
	// The cross-check machinery must work on a deserialized graph
	set := g2.CrossSet([]rune("CAT"), nil)
	assert.True(t, g2.Alphabet().Member('S', set))

	// Truncated input
	var g3 Gaddag
	assert.Error(t, g3.UnmarshalBinary(data[:10]))
	// Corrupted magic number
	corrupt := make([]byte, len(data))
	copy(corrupt, data)
	corrupt[0] ^= 0xff
	assert.Error(t, g3.UnmarshalBinary(corrupt))
}
