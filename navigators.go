// navigators.go
//
// Copyright (C) 2026 Scrawl Games

// This file contains the Navigator interface and a few types that
// implement it to provide various kinds of navigation over a
// Gaddag: finding whole words, finding words that match patterns
// with wildcards, and finding permutations of a rack.
//
// A Gaddag stores every word once per rotation point, but the
// rotations that contain no separator are exactly the reversed
// words of the dictionary. Navigators therefore traverse only the
// separator-free arcs and work in reversed-word space; inputs are
// reversed on the way in and results on the way out.

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
	"sort"
	"strings"
)

// Navigator is an interface that describes behaviors that control
// the navigation of a Gaddag
type Navigator interface {
	IsAccepting() bool
	Accepts(rune) bool
	Accept(matched []rune, final bool)
	PushEdge(rune) bool
	PopEdge() bool
	Done()
}

// Navigation contains the state of a single navigation that is
// underway within a Gaddag
type Navigation struct {
	gaddag    *Gaddag
	navigator Navigator
}

// FromNode continues a navigation from a node in the Gaddag,
// enumerating through outgoing arcs until the navigator is
// satisfied. Separator arcs are not part of reversed-word space
// and are skipped.
func (nav *Navigation) FromNode(state int32, matched []rune) {
	g := nav.gaddag
	nd := &g.nodes[state]
	first, last := nd.firstArc, nd.firstArc+nd.numArcs
	for i := first; i < last; i++ {
		a := &g.arcs[i]
		if a.sym == Separator {
			continue
		}
		if nav.navigator.PushEdge(a.sym) {
			// The navigator wants us to enter this arc
			nav.FromArc(a, matched)
			if !nav.navigator.PopEdge() {
				// The navigator doesn't want to visit
				// other arcs, so we're done with this node
				break
			}
		}
	}
}

// FromArc navigates along a single arc in the Gaddag
func (nav *Navigation) FromArc(a *arc, alreadyMatched []rune) {
	navigator := nav.navigator
	if !navigator.Accepts(a.sym) {
		return
	}
	// Copy the alreadyMatched rune slice so that deeper recursion
	// levels do not clobber our suffix
	matched := make([]rune, len(alreadyMatched), len(alreadyMatched)+1)
	copy(matched, alreadyMatched)
	matched = append(matched, a.sym)
	// Notify the navigator of the match and whether we have just
	// completed an entire stored word
	navigator.Accept(matched, nav.gaddag.IsTerminal(a.next))
	if navigator.IsAccepting() {
		nav.FromNode(a.next, matched)
	}
}

// Go starts a navigation with the given Navigator
func (nav *Navigation) Go(gaddag *Gaddag, navigator Navigator) {
	if nav == nil || gaddag == nil || navigator == nil {
		return
	}
	nav.gaddag = gaddag
	nav.navigator = navigator
	if navigator.IsAccepting() {
		nav.FromNode(gaddag.root, []rune{})
	}
	navigator.Done()
}

// Navigate runs the given Navigator over the Gaddag
func (g *Gaddag) Navigate(navigator Navigator) {
	var nav Navigation
	nav.Go(g, navigator)
}

// FindNavigator stores the state for a plain word search in the
// Gaddag, and implements the Navigator interface
type FindNavigator struct {
	word    []rune
	lenWord int
	index   int
	found   bool
}

// Init initializes a FindNavigator with the word to search for
func (fn *FindNavigator) Init(word string) {
	// The search happens in reversed-word space
	fn.word = reverseRunes([]rune(word))
	fn.lenWord = len(fn.word)
}

// PushEdge determines whether the navigation should proceed into
// an arc labeled with the given letter
func (fn *FindNavigator) PushEdge(chr rune) bool {
	// If the arc matches our place in the sought word, go for it
	return fn.word[fn.index] == chr
}

// PopEdge returns false if there is no need to visit other arcs
// after this one has been traversed
func (fn *FindNavigator) PopEdge() bool {
	// There can only be one correct outgoing arc for the
	// Find function, so we return false to prevent other arcs
	// from being tried
	return false
}

// Done is called when the navigation is complete
func (fn *FindNavigator) Done() {
}

// IsAccepting returns false if the navigator should not expect
// more characters
func (fn *FindNavigator) IsAccepting() bool {
	return fn.index < fn.lenWord
}

// Accepts returns true if the navigator should accept and 'eat'
// the given character
func (fn *FindNavigator) Accepts(chr rune) bool {
	// For the FindNavigator, we never enter an arc unless
	// we have the correct character, so we simply advance
	// the index and return true
	fn.index++
	return true
}

// Accept is called to inform the navigator of a match and
// whether it is a final word
func (fn *FindNavigator) Accept(matched []rune, final bool) {
	if final && fn.index == fn.lenWord {
		// This is a whole word (final=true) and matches our
		// length, so that's it
		fn.found = true
	}
}

// PermutationNavigator stores the state for a rack permutation
// search in the Gaddag, and implements the Navigator interface
type PermutationNavigator struct {
	rack    string
	stack   []string
	results []string
	minLen  int
}

// Init initializes a PermutationNavigator with the rack to
// search for
func (pn *PermutationNavigator) Init(rack string, minLen int) {
	pn.rack = rack
	pn.minLen = minLen
	pn.stack = make([]string, 0, RackSize)
	pn.results = make([]string, 0)
}

// PushEdge determines whether the navigation should proceed into
// an arc labeled with the given letter
func (pn *PermutationNavigator) PushEdge(chr rune) bool {
	if strings.ContainsRune(pn.rack, chr) || strings.ContainsRune(pn.rack, '?') {
		pn.stack = append(pn.stack, pn.rack)
		return true
	}
	return false
}

// PopEdge returns false if there is no need to visit other arcs
// after this one has been traversed
func (pn *PermutationNavigator) PopEdge() bool {
	last := len(pn.stack) - 1
	pn.rack = pn.stack[last]
	pn.stack = pn.stack[0:last]
	return true
}

// Done is called when the navigation is complete
func (pn *PermutationNavigator) Done() {
	// Flip the matches back out of reversed-word space and
	// return them in alphabetical order
	for i, word := range pn.results {
		pn.results[i] = string(reverseRunes([]rune(word)))
	}
	sort.Strings(pn.results)
}

// IsAccepting returns false if the navigator should not expect
// more characters
func (pn *PermutationNavigator) IsAccepting() bool {
	return len(pn.rack) > 0
}

// Accepts returns true if the navigator should accept and 'eat'
// the given character
func (pn *PermutationNavigator) Accepts(chr rune) bool {
	exactMatch := strings.ContainsRune(pn.rack, chr)
	if !exactMatch && !strings.ContainsRune(pn.rack, '?') {
		// The next letter is not in the rack, and the rack
		// does not contain a blank: return false
		return false
	}
	if exactMatch {
		// This is a regular letter match
		pn.rack = strings.Replace(pn.rack, string(chr), "", 1)
	} else {
		// This is a blank match
		pn.rack = strings.Replace(pn.rack, "?", "", 1)
	}
	return true
}

// Accept is called to inform the navigator of a match and
// whether it is a final word
func (pn *PermutationNavigator) Accept(matched []rune, final bool) {
	if final && len(matched) >= pn.minLen {
		// This is a full word (final=true) and the number of
		// letters is above the minimum limit: add it to the
		// results
		pn.results = append(pn.results, string(matched))
	}
}

// MatchNavigator stores the state for a pattern matching
// navigation of a Gaddag, and implements the Navigator interface
type MatchNavigator struct {
	pattern    []rune
	lenP       int
	index      int
	chMatch    rune
	isWildcard bool
	stack      []matchItem
	results    []string
}

type matchItem struct {
	index      int
	chMatch    rune
	isWildcard bool
}

// Init initializes a MatchNavigator with the pattern to match,
// where '?' stands for any single letter
func (mn *MatchNavigator) Init(pattern string) {
	// The match happens in reversed-word space
	mn.pattern = reverseRunes([]rune(pattern))
	mn.lenP = len(mn.pattern)
	mn.chMatch = mn.pattern[0]
	mn.isWildcard = mn.chMatch == '?'
	mn.stack = make([]matchItem, 0, mn.lenP)
	mn.results = make([]string, 0, 16)
}

// PushEdge determines whether the navigation should proceed into
// an arc labeled with the given letter
func (mn *MatchNavigator) PushEdge(chr rune) bool {
	if chr != mn.chMatch && !mn.isWildcard {
		return false
	}
	mn.stack = append(mn.stack, matchItem{mn.index, mn.chMatch, mn.isWildcard})
	return true
}

// PopEdge returns false if there is no need to visit other arcs
// after this one has been traversed
func (mn *MatchNavigator) PopEdge() bool {
	last := len(mn.stack) - 1
	mt := &mn.stack[last]
	mn.index, mn.chMatch, mn.isWildcard = mt.index, mt.chMatch, mt.isWildcard
	mn.stack = mn.stack[0:last]
	return mn.isWildcard
}

// Done is called when the navigation is complete
func (mn *MatchNavigator) Done() {
	for i, word := range mn.results {
		mn.results[i] = string(reverseRunes([]rune(word)))
	}
	sort.Strings(mn.results)
}

// IsAccepting returns false if the navigator should not expect
// more characters
func (mn *MatchNavigator) IsAccepting() bool {
	return mn.index < mn.lenP
}

// Accepts returns true if the navigator should accept and 'eat'
// the given character
func (mn *MatchNavigator) Accepts(chr rune) bool {
	if chr != mn.chMatch && !mn.isWildcard {
		// Not a correct next character in the pattern
		return false
	}
	// This is a correct character: advance our index
	mn.index++
	if mn.index < mn.lenP {
		mn.chMatch = mn.pattern[mn.index]
		mn.isWildcard = mn.chMatch == '?'
	}
	return true
}

// Accept is called to inform the navigator of a match and
// whether it is a final word
func (mn *MatchNavigator) Accept(matched []rune, final bool) {
	if final && mn.index == mn.lenP {
		// Entire pattern match
		mn.results = append(mn.results, string(matched))
	}
}
