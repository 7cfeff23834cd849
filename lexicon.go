// lexicon.go
//
// Copyright (C) 2026 Scrawl Games

// This file implements loading of word lists and cached, prebuilt
// automatons from disk. A word list is a plain text file with one
// word per line; lines starting with '#' are ignored. Building a
// Gaddag from a large word list takes a while, so the built
// automaton can be cached in a binary file next to the word list
// and reloaded on subsequent runs.

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
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ReadWordList reads a word list from the given reader, one word
// per line. Words are upper-cased; empty lines and lines starting
// with '#' are skipped.
func ReadWordList(r io.Reader) ([]string, error) {
	words := make([]string, 0, 1024)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadWordFile reads a word list from a text file
func LoadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return ReadWordList(f)
}

// BuildFromFile builds a Gaddag from the word list in the
// given text file
func BuildFromFile(path string) (*Gaddag, error) {
	words, err := LoadWordFile(path)
	if err != nil {
		return nil, err
	}
	started := time.Now()
	g, err := BuildGaddag(words)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("wordFile", path).
		Int("words", g.WordCount()).
		Int("nodes", g.NumNodes()).
		Int("arcs", g.NumArcs()).
		Dur("elapsed", time.Since(started)).
		Msg("built gaddag from word list")
	return g, nil
}

// LoadGaddagFile loads a previously serialized Gaddag from a
// binary file
func LoadGaddagFile(path string) (*Gaddag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gaddag file: %w", err)
	}
	defer f.Close()
	g, err := DeserializeGaddag(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return g, nil
}

// SaveGaddagFile serializes a Gaddag to a binary file
func SaveGaddagFile(g *Gaddag, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating gaddag file: %w", err)
	}
	if err = g.Serialize(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// LoadOrBuild returns a Gaddag for the given word list file,
// using the cached binary automaton at cachePath if it exists
// and is newer than the word list. Otherwise the automaton is
// built from the word list and, if cachePath is nonempty, saved
// there for next time.
func LoadOrBuild(wordPath, cachePath string) (*Gaddag, error) {
	if cachePath != "" {
		cacheInfo, err := os.Stat(cachePath)
		if err == nil {
			wordInfo, werr := os.Stat(wordPath)
			if werr != nil || !wordInfo.ModTime().After(cacheInfo.ModTime()) {
				g, lerr := LoadGaddagFile(cachePath)
				if lerr == nil {
					log.Debug().
						Str("cacheFile", cachePath).
						Int("words", g.WordCount()).
						Msg("loaded cached gaddag")
					return g, nil
				}
				log.Warn().
					Err(lerr).
					Str("cacheFile", cachePath).
					Msg("cached gaddag unusable, rebuilding")
			}
		}
	}
	g, err := BuildFromFile(wordPath)
	if err != nil {
		return nil, err
	}
	if cachePath != "" {
		if err := SaveGaddagFile(g, cachePath); err != nil {
			// The cache is an optimization; a failure to write it
			// should not fail the load
			log.Warn().
				Err(err).
				Str("cacheFile", cachePath).
				Msg("could not write gaddag cache")
		}
	}
	return g, nil
}
