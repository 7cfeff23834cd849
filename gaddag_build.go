// gaddag_build.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements construction of a Gaddag from a word list:
// validation of the input words, insertion of all word rotations
// into a trie, and minimization of the trie into a flat node/arc
// arena by merging states with identical right languages.

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
	"sort"
	"strconv"
	"strings"
)

// MinWordLen and MaxWordLen bound the lengths of words accepted
// into the dictionary. MaxWordLen equals the board size.
const (
	MinWordLen = 2
	MaxWordLen = BoardSize
)

// Default capacity of the cross-check cache
const crossCacheSize = 8192

// ConstructionError is returned by BuildGaddag when the input
// word list is invalid
type ConstructionError struct {
	// The offending word, if the error relates to a single word
	Word string
	// Reason describes what was wrong with the input
	Reason string
}

func (e *ConstructionError) Error() string {
	if e.Word == "" {
		return "gaddag: " + e.Reason
	}
	return fmt.Sprintf("gaddag: %s: %q", e.Reason, e.Word)
}

// trieNode is a node in the intermediate, unminimized trie of
// word rotations
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// add descends from this node via the given symbol, creating the
// child node if it does not exist yet
func (tn *trieNode) add(sym rune) *trieNode {
	child, ok := tn.children[sym]
	if !ok {
		child = newTrieNode()
		tn.children[sym] = child
	}
	return child
}

// insert adds a path for the given symbols, marking the last
// node as terminal
func (tn *trieNode) insert(syms []rune) {
	nd := tn
	for _, sym := range syms {
		nd = nd.add(sym)
	}
	nd.terminal = true
}

// builder accumulates the minimized arena while compressing
// the rotation trie
type builder struct {
	gaddag *Gaddag
	// registry maps a node signature to its arena index, merging
	// nodes with identical outgoing structure and terminality
	registry map[string]int32
}

// compress recursively minimizes the subtrie rooted at tn and
// returns the arena index of the equivalent node. Children are
// compressed first so that a node's signature is expressed in
// terms of already-final child indices.
func (b *builder) compress(tn *trieNode) int32 {
	syms := make([]rune, 0, len(tn.children))
	for sym := range tn.children {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	childIx := make([]int32, len(syms))
	for i, sym := range syms {
		childIx[i] = b.compress(tn.children[sym])
	}
	// Signature: terminality plus the sorted (symbol, child) pairs
	var sb strings.Builder
	if tn.terminal {
		sb.WriteByte('!')
	}
	for i, sym := range syms {
		sb.WriteRune(sym)
		sb.WriteString(strconv.Itoa(int(childIx[i])))
		sb.WriteByte(';')
	}
	sig := sb.String()
	if ix, ok := b.registry[sig]; ok {
		return ix
	}
	g := b.gaddag
	ix := int32(len(g.nodes))
	firstArc := int32(len(g.arcs))
	for i, sym := range syms {
		g.arcs = append(g.arcs, arc{sym: sym, next: childIx[i]})
	}
	g.nodes = append(g.nodes, node{
		firstArc: firstArc,
		numArcs:  int32(len(syms)),
		terminal: tn.terminal,
	})
	b.registry[sig] = ix
	return ix
}

// validateWord checks a single dictionary word against the
// alphabet and the length bounds
func validateWord(word string, alphabet *Alphabet) error {
	runes := []rune(word)
	if len(runes) < MinWordLen {
		return &ConstructionError{Word: word, Reason: "word too short"}
	}
	if len(runes) > MaxWordLen {
		return &ConstructionError{Word: word, Reason: "word too long"}
	}
	for _, r := range runes {
		if !alphabet.Contains(r) {
			return &ConstructionError{Word: word, Reason: "invalid letter in word"}
		}
	}
	return nil
}

// insertRotations adds all GADDAG rotations of a word to the trie.
// For a word of n letters, the rotations are the fully reversed
// word (terminal, with no separator), plus for each split point i
// in [0, n-2] the reversed prefix w[0..i], the separator, and the
// unchanged suffix w[i+1..].
func insertRotations(root *trieNode, word []rune) {
	n := len(word)
	rev := reverseRunes(word)
	root.insert(rev)
	// Reuse a single buffer for the split rotations
	buf := make([]rune, 0, n+1)
	for i := 0; i < n-1; i++ {
		buf = buf[:0]
		// Reversed prefix w[0..i]
		for j := i; j >= 0; j-- {
			buf = append(buf, word[j])
		}
		buf = append(buf, Separator)
		buf = append(buf, word[i+1:]...)
		root.insert(buf)
	}
}

// BuildGaddag constructs a minimized Gaddag from a list of words.
// Duplicate words are tolerated; they are inserted once. An empty
// word list yields a degenerate automaton with a root node only.
// Returns a ConstructionError if the list contains a word that is
// too short, too long, or uses a letter outside the alphabet.
func BuildGaddag(words []string) (*Gaddag, error) {
	var alphabet Alphabet
	alphabet.Init(EnglishAlphabet)
	root := newTrieNode()
	maxLen := 0
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if err := validateWord(word, &alphabet); err != nil {
			return nil, err
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		runes := []rune(word)
		if len(runes) > maxLen {
			maxLen = len(runes)
		}
		insertRotations(root, runes)
	}
	g := &Gaddag{
		alphabet:   alphabet,
		maxWordLen: maxLen,
		wordCount:  len(seen),
	}
	b := &builder{
		gaddag:   g,
		registry: make(map[string]int32),
	}
	// The root is compressed last, after all its descendants
	g.root = b.compress(root)
	g.crossCache.init(crossCacheSize)
	return g, nil
}
