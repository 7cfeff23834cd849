// main.go
// Copyright (C) 2026 Scrawl Games

// Example main program for exercising the scrawl module:
// builds or loads a word graph and simulates robot games.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	scrawl "github.com/scrawl-games/scrawl"
)

// Generate a sequence of moves and responses
func simulateGame(gaddag *scrawl.Gaddag,
	robotA, robotB *scrawl.RobotWrapper,
	verbose bool) (scoreA, scoreB int) {

	// Wrap fmt.Printf
	var p func(string, ...any) (int, error)
	if verbose {
		p = fmt.Printf
	} else {
		p = func(format string, a ...any) (int, error) { return 0, nil }
	}
	game := scrawl.NewGame(gaddag)
	game.SetPlayerNames("Robot A", "Robot B")
	p("%v\n", game)
	for i := 0; ; i++ {
		state := game.State()
		var move scrawl.Move
		// Ask robotA or robotB to generate a move
		if i%2 == 0 {
			move = robotA.GenerateMove(state)
		} else {
			move = robotB.GenerateMove(state)
		}
		if err := game.ApplyValid(move); err != nil {
			log.Fatal().Err(err).Msg("could not apply generated move")
		}
		p("%v\n", game)
		if game.IsOver() {
			break
		}
	}
	// Apply the final rack adjustments
	if err := game.Finish(); err != nil {
		log.Fatal().Err(err).Msg("could not finish game")
	}
	p("Game over!\n%v\n", game)
	scoreA, scoreB = game.Scores[0], game.Scores[1]
	return // scoreA, scoreB
}

func main() {
	wordFile := flag.String("w", "words.txt", "Word list file (one word per line)")
	cacheFile := flag.String("c", "", "Cached automaton file (built if missing)")
	num := flag.Int("n", 10, "Number of games to simulate")
	quiet := flag.Bool("q", false, "Suppress output of game state and moves")
	bestOfN := flag.Int("b", 0, "Make Robot B pick among the N best moves (0 = highest score)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	gaddag, err := scrawl.LoadOrBuild(*wordFile, *cacheFile)
	if err != nil {
		log.Fatal().Err(err).Str("wordFile", *wordFile).Msg("could not load dictionary")
	}

	robotA := scrawl.NewHighScoreRobot()
	robotB := scrawl.NewHighScoreRobot()
	if *bestOfN > 1 {
		robotB = scrawl.NewOneOfNBestRobot(*bestOfN)
	}
	var winsA, winsB int
	for i := 0; i < *num; i++ {
		scoreA, scoreB := simulateGame(gaddag, robotA, robotB, !*quiet)
		if scoreA > scoreB {
			winsA++
		} else if scoreB > scoreA {
			winsB++
		}
	}
	fmt.Printf("%v games were played with %v words in the dictionary.\n"+
		"Robot A won %v games, and Robot B won %v games; %v games were draws.\n",
		*num, gaddag.WordCount(),
		winsA, winsB, *num-winsA-winsB)
}
