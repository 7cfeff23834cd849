// server.go
//
// Copyright (C) 2026 Scrawl Games
//
// This file implements a compact HTTP service that receives
// JSON encoded requests and returns JSON encoded responses:
// move generation for a given board and rack, word checking,
// and riddle generation.

package scrawl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
	"unicode"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// MovesRequest asks for all legal moves for a board and a rack.
// The board is represented as 15 strings of 15 characters, with
// '.' for empty squares, upper case letters for normal tiles and
// lower case letters for blank tiles that have been assigned the
// corresponding meaning.
type MovesRequest struct {
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
	Limit int      `json:"limit"`
}

// WordCheckRequest asks whether the given words are in the
// dictionary
type WordCheckRequest struct {
	Words []string `json:"words"`
}

// RiddleRequest asks for a generated riddle
type RiddleRequest struct {
	TimeLimitSeconds int `json:"timeLimit"`
}

// MoveWithScore is a kludge to be able to marshal a Move with
// its score
type MoveWithScore struct {
	Move  Move
	Score int
}

// MarshalJSON marshals a MoveWithScore to JSON
func (m MoveWithScore) MarshalJSON() ([]byte, error) {
	obj := map[string]any{
		"score": m.Score,
	}
	switch move := m.Move.(type) {
	case *TileMove:
		obj["kind"] = "tile"
		obj["word"] = move.Word
		obj["coord"] = Coord(move.TopLeft.Row, move.TopLeft.Col, move.Horizontal)
		covers := make([]map[string]any, 0, len(move.Covers))
		for coord, cover := range move.Covers {
			covers = append(covers, map[string]any{
				"row":     coord.Row,
				"col":     coord.Col,
				"letter":  string(cover.Letter),
				"meaning": string(cover.Meaning),
			})
		}
		sort.Slice(covers, func(i, j int) bool {
			if covers[i]["row"].(int) != covers[j]["row"].(int) {
				return covers[i]["row"].(int) < covers[j]["row"].(int)
			}
			return covers[i]["col"].(int) < covers[j]["col"].(int)
		})
		obj["covers"] = covers
	case *ExchangeMove:
		obj["kind"] = "exchange"
		obj["letters"] = move.Letters
	case *PassMove:
		obj["kind"] = "pass"
	default:
		obj["kind"] = "other"
	}
	return json.Marshal(obj)
}

// movesResponse is the JSON response to a MovesRequest
type movesResponse struct {
	Version string          `json:"version"`
	Count   int             `json:"count"`
	Moves   []MoveWithScore `json:"moves"`
}

// wordCheckResult is a single word check outcome
type wordCheckResult struct {
	Word string `json:"word"`
	Ok   bool   `json:"ok"`
}

// MoveService is an HTTP service exposing the move generator,
// the dictionary and the riddle generator
type MoveService struct {
	Gaddag  *Gaddag
	TileSet *TileSet
	// Optional: a store for generated riddles
	Store *PuzzleStore
}

// NewMoveService creates a service around the given word graph,
// using the standard English tile set
func NewMoveService(gaddag *Gaddag) *MoveService {
	return &MoveService{Gaddag: gaddag, TileSet: EnglishTileSet}
}

// Router returns a mux router with the service's endpoints
func (svc *MoveService) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/moves", svc.MovesHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/wordcheck", svc.WordCheckHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/riddle", svc.RiddleHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/_ah/warmup", func(w http.ResponseWriter, r *http.Request) {
		log.Debug().Msg("warmup request received")
	})
	return router
}

// parseBoard rebuilds a Board from its string representation
func parseBoard(rows []string, tileSet *TileSet) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("invalid board: must be %v rows", BoardSize)
	}
	board := NewBoard()
	for r, rowString := range rows {
		row := []rune(rowString)
		if len(row) != BoardSize {
			return nil, fmt.Errorf(
				"invalid board row #%v: must be %v characters long", r, BoardSize)
		}
		for c, letter := range row {
			if letter == '.' || letter == ' ' {
				continue
			}
			meaning := letter
			score := 0
			// Lower case letters represent blank tiles that have
			// been assigned a meaning; they keep a score of 0
			if unicode.IsLower(letter) {
				meaning = unicode.ToUpper(letter)
				letter = '?'
			} else {
				score = tileSet.Scores[letter]
			}
			if _, ok := tileSet.Scores[meaning]; !ok {
				return nil, fmt.Errorf("invalid letter '%c' at %v,%v", letter, r, c)
			}
			tile := &Tile{
				Letter:  letter,
				Meaning: meaning,
				Score:   score,
			}
			if !board.PlaceTile(r, c, tile) {
				return nil, fmt.Errorf("square already occupied: %v,%v", r, c)
			}
		}
	}
	// The board must either be empty or have a tile in the start square
	if board.NumTiles > 0 && !board.HasStartTile() {
		return nil, fmt.Errorf("the start square must be occupied")
	}
	return board, nil
}

// parseRack rebuilds a Rack from a string of letters, with '?'
// for blank tiles
func parseRack(letters string, tileSet *TileSet) (*Rack, error) {
	runes := []rune(letters)
	if len(runes) == 0 || len(runes) > RackSize {
		return nil, fmt.Errorf("invalid rack: must be 1-%v letters", RackSize)
	}
	rack := NewRack()
	for i, letter := range runes {
		score, ok := tileSet.Scores[letter]
		if !ok {
			return nil, fmt.Errorf("invalid letter '%c' in rack", letter)
		}
		rack.Slots[i].Tile = &Tile{
			Letter:  letter,
			Meaning: letter,
			Score:   score,
		}
		rack.Letters[letter]++
	}
	return rack, nil
}

// MovesHandler handles a MovesRequest: it generates all legal
// moves for the given board and rack and returns them in
// descending score order
func (svc *MoveService) MovesHandler(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	board, err := parseBoard(req.Board, svc.TileSet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rack, err := parseRack(req.Rack, svc.TileSet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	state := NewState(svc.Gaddag, svc.TileSet, board, rack)
	// Generate all valid moves, stopping early if the client
	// goes away
	moves, err := state.GenerateMovesContext(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	movesWithScores := make([]MoveWithScore, len(moves))
	for i, move := range moves {
		movesWithScores[i] = MoveWithScore{
			Move:  move,
			Score: move.Score(state),
		}
	}
	// Sort the moves in descending order by score
	sort.SliceStable(movesWithScores, func(i, j int) bool {
		return movesWithScores[i].Score > movesWithScores[j].Score
	})
	// If a limit is specified, use that as a cap on the number
	// of moves returned
	if req.Limit > 0 && req.Limit < len(movesWithScores) {
		movesWithScores = movesWithScores[0:req.Limit]
	}
	writeJSON(w, movesResponse{
		Version: "1.0",
		Count:   len(movesWithScores),
		Moves:   movesWithScores,
	})
}

// WordCheckHandler checks the validity of the words in a
// WordCheckRequest against the dictionary
func (svc *MoveService) WordCheckHandler(w http.ResponseWriter, r *http.Request) {
	var req WordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	results := make([]wordCheckResult, len(req.Words))
	allOk := true
	for i, word := range req.Words {
		ok := svc.Gaddag.Find(word)
		results[i] = wordCheckResult{Word: word, Ok: ok}
		if !ok {
			allOk = false
		}
	}
	writeJSON(w, map[string]any{
		"ok":      allOk,
		"results": results,
	})
}

// RiddleHandler generates a fresh riddle and returns it. If the
// service has a puzzle store, the riddle is saved there as well.
func (svc *MoveService) RiddleHandler(w http.ResponseWriter, r *http.Request) {
	var req RiddleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	timeLimit := time.Duration(req.TimeLimitSeconds) * time.Second
	if timeLimit <= 0 || timeLimit > 60*time.Second {
		timeLimit = 15 * time.Second
	}
	params := GenerationParams{
		Gaddag:        svc.Gaddag,
		TileSet:       svc.TileSet,
		TimeLimit:     timeLimit,
		NumWorkers:    4,
		NumCandidates: 20,
	}
	riddle, _, err := GenerateRiddle(params, DefaultHeuristics)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if svc.Store != nil {
		if _, err := svc.Store.Save(r.Context(), riddle); err != nil {
			log.Error().Err(err).Msg("could not save riddle")
		}
	}
	writeJSON(w, riddle)
}

// writeJSON encodes a response object as JSON
func writeJSON(w http.ResponseWriter, obj any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
