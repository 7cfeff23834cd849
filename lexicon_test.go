// lexicon_test.go
//
// Copyright (C) 2026 Scrawl Games

// This file contains tests for word list reading and the
// compiled word graph cache.

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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordList(t *testing.T) {
	input := "CAT\n# a comment\n\nat\n  cats  \n"
	words, err := ReadWordList(strings.NewReader(input))
	require.NoError(t, err)
	// Comments and blank lines are skipped; words are upper-cased
	// and trimmed
	assert.Equal(t, []string{"CAT", "AT", "CATS"}, words)
}

func TestLoadOrBuild(t *testing.T) {
	dir := t.TempDir()
	wordPath := filepath.Join(dir, "words.txt")
	cachePath := filepath.Join(dir, "words.gaddag")
	require.NoError(t,
		os.WriteFile(wordPath, []byte("CAT\nAT\nCATS\n"), 0644))

	// The first call builds the graph and writes the cache file
	g, err := LoadOrBuild(wordPath, cachePath)
	require.NoError(t, err)
	assert.Equal(t, 3, g.WordCount())
	assert.True(t, g.Find("CATS"))
	_, err = os.Stat(cachePath)
	require.NoError(t, err)

	// The second call is served from the cache
	g2, err := LoadOrBuild(wordPath, cachePath)
	require.NoError(t, err)
	assert.Equal(t, g.WordCount(), g2.WordCount())
	assert.Equal(t, g.NumNodes(), g2.NumNodes())
	assert.True(t, g2.Find("CAT"))
	assert.False(t, g2.Find("DOG"))

	// A corrupt cache is ignored and the graph is rebuilt
	require.NoError(t, os.WriteFile(cachePath, []byte("garbage"), 0644))
	g3, err := LoadOrBuild(wordPath, cachePath)
	require.NoError(t, err)
	assert.Equal(t, 3, g3.WordCount())

	// A missing word file is an error
	_, err = LoadOrBuild(filepath.Join(dir, "missing.txt"), "")
	assert.Error(t, err)
}

func TestBuildFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	wordPath := filepath.Join(dir, "words.txt")
	// A word list with an invalid entry
	require.NoError(t,
		os.WriteFile(wordPath, []byte("CAT\nX\n"), 0644))
	_, err := BuildFromFile(wordPath)
	assert.Error(t, err)
	// A word list with no entries builds a degenerate automaton
	require.NoError(t, os.WriteFile(wordPath, []byte("# only comments\n"), 0644))
	g, err := BuildFromFile(wordPath)
	require.NoError(t, err)
	assert.Equal(t, 0, g.WordCount())
}
