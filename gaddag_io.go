// gaddag_io.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements binary serialization and deserialization of
// a minimized Gaddag, so that an automaton built once from a word
// list can be stored and reloaded without rebuilding.

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
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// File format identification
const (
	gaddagMagic   = uint32(0x47414447) // "GADG"
	gaddagVersion = uint16(1)
)

// All multi-byte fields are little-endian
var byteOrder = binary.LittleEndian

// Serialize writes the Gaddag to the given writer in a versioned
// binary format
func (g *Gaddag) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	write := func(data any) error {
		return binary.Write(bw, byteOrder, data)
	}
	if err := write(gaddagMagic); err != nil {
		return err
	}
	if err := write(gaddagVersion); err != nil {
		return err
	}
	alpha := []byte(g.alphabet.asString)
	if err := write(uint16(len(alpha))); err != nil {
		return err
	}
	if err := write(alpha); err != nil {
		return err
	}
	if err := write(uint32(g.wordCount)); err != nil {
		return err
	}
	if err := write(uint16(g.maxWordLen)); err != nil {
		return err
	}
	if err := write(g.root); err != nil {
		return err
	}
	if err := write(uint32(len(g.nodes))); err != nil {
		return err
	}
	if err := write(uint32(len(g.arcs))); err != nil {
		return err
	}
	for i := range g.nodes {
		nd := &g.nodes[i]
		if err := write(nd.firstArc); err != nil {
			return err
		}
		if err := write(nd.numArcs); err != nil {
			return err
		}
		var term uint8
		if nd.terminal {
			term = 1
		}
		if err := write(term); err != nil {
			return err
		}
	}
	for i := range g.arcs {
		a := &g.arcs[i]
		// All symbols, including the separator, fit in one byte
		if err := write(uint8(a.sym)); err != nil {
			return err
		}
		if err := write(a.next); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DeserializeGaddag reads a Gaddag previously written by Serialize
func DeserializeGaddag(r io.Reader) (*Gaddag, error) {
	br := bufio.NewReader(r)
	read := func(data any) error {
		return binary.Read(br, byteOrder, data)
	}
	var magic uint32
	if err := read(&magic); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	if magic != gaddagMagic {
		return nil, fmt.Errorf("gaddag: bad magic number 0x%08x", magic)
	}
	var version uint16
	if err := read(&version); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	if version != gaddagVersion {
		return nil, fmt.Errorf("gaddag: unsupported format version %d", version)
	}
	var alphaLen uint16
	if err := read(&alphaLen); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	alpha := make([]byte, alphaLen)
	if _, err := io.ReadFull(br, alpha); err != nil {
		return nil, fmt.Errorf("gaddag: reading alphabet: %w", err)
	}
	g := &Gaddag{}
	g.alphabet.Init(string(alpha))
	var wordCount uint32
	if err := read(&wordCount); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	g.wordCount = int(wordCount)
	var maxLen uint16
	if err := read(&maxLen); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	g.maxWordLen = int(maxLen)
	if err := read(&g.root); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	var numNodes, numArcs uint32
	if err := read(&numNodes); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	if err := read(&numArcs); err != nil {
		return nil, fmt.Errorf("gaddag: reading header: %w", err)
	}
	g.nodes = make([]node, numNodes)
	for i := range g.nodes {
		nd := &g.nodes[i]
		if err := read(&nd.firstArc); err != nil {
			return nil, fmt.Errorf("gaddag: reading node %d: %w", i, err)
		}
		if err := read(&nd.numArcs); err != nil {
			return nil, fmt.Errorf("gaddag: reading node %d: %w", i, err)
		}
		var term uint8
		if err := read(&term); err != nil {
			return nil, fmt.Errorf("gaddag: reading node %d: %w", i, err)
		}
		nd.terminal = term != 0
		if nd.firstArc < 0 || nd.firstArc+nd.numArcs > int32(numArcs) {
			return nil, fmt.Errorf("gaddag: node %d has arc span out of range", i)
		}
	}
	g.arcs = make([]arc, numArcs)
	for i := range g.arcs {
		a := &g.arcs[i]
		var sym uint8
		if err := read(&sym); err != nil {
			return nil, fmt.Errorf("gaddag: reading arc %d: %w", i, err)
		}
		a.sym = rune(sym)
		if err := read(&a.next); err != nil {
			return nil, fmt.Errorf("gaddag: reading arc %d: %w", i, err)
		}
		if a.next < 0 || a.next >= int32(numNodes) {
			return nil, fmt.Errorf("gaddag: arc %d points out of range", i)
		}
	}
	if g.root < 0 || g.root >= int32(numNodes) {
		return nil, fmt.Errorf("gaddag: root node out of range")
	}
	g.crossCache.init(crossCacheSize)
	return g, nil
}

// MarshalBinary implements encoding.BinaryMarshaler
func (g *Gaddag) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (g *Gaddag) UnmarshalBinary(data []byte) error {
	loaded, err := DeserializeGaddag(bytes.NewReader(data))
	if err != nil {
		return err
	}
	g.alphabet = loaded.alphabet
	g.nodes = loaded.nodes
	g.arcs = loaded.arcs
	g.root = loaded.root
	g.maxWordLen = loaded.maxWordLen
	g.wordCount = loaded.wordCount
	g.crossCache.init(crossCacheSize)
	return nil
}
