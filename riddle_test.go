// riddle_test.go
//
// Copyright (C) 2026 Scrawl Games

// This file contains tests for the riddle generator.

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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRiddle(t *testing.T) {
	params := GenerationParams{
		Gaddag:        newGameGraph(t),
		TileSet:       EnglishTileSet,
		TimeLimit:     10 * time.Second,
		NumWorkers:    2,
		NumCandidates: 2,
	}
	// Loose heuristics so that almost any position qualifies
	heuristics := HeuristicConfig{
		MinTiles:      2,
		MaxTiles:      6,
		MinMoves:      1,
		MinBestScore:  1,
		MinWordLength: 2,
	}
	riddle, stats, err := GenerateRiddle(params, heuristics)
	require.NoError(t, err)
	require.NotNil(t, riddle)
	require.NotNil(t, stats)
	assert.GreaterOrEqual(t, stats.Candidates, int64(params.NumCandidates))
	// The riddle must describe a complete position
	assert.Len(t, riddle.Board, BoardSize)
	assert.NotEmpty(t, riddle.Rack)
	assert.NotEmpty(t, riddle.Solution.Move)
	assert.NotEmpty(t, riddle.Solution.Coord)
	assert.Greater(t, riddle.Solution.Score, 0)
	assert.GreaterOrEqual(t, riddle.Analysis.TotalMoves, 1)
	assert.GreaterOrEqual(t,
		riddle.Analysis.BestMoveScore, riddle.Analysis.SecondBestMoveScore)
	// The solution must be a word from the vocabulary
	assert.True(t, params.Gaddag.Find(riddle.Solution.Move))
}

func TestGenerateRiddleNoCandidate(t *testing.T) {
	params := GenerationParams{
		Gaddag:        newGameGraph(t),
		TileSet:       EnglishTileSet,
		TimeLimit:     200 * time.Millisecond,
		NumWorkers:    2,
		NumCandidates: 1,
	}
	// An unsatisfiable score requirement
	heuristics := DefaultHeuristics
	heuristics.MinBestScore = 100000
	riddle, _, err := GenerateRiddle(params, heuristics)
	assert.Error(t, err)
	assert.Nil(t, riddle)
}
