// store.go
//
// Copyright (C) 2026 Scrawl Games
//
// This file implements persistence of generated riddles in
// Google Cloud Datastore, so that a riddle of the day can be
// generated once and served many times.

package scrawl

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/datastore"
	"github.com/rs/zerolog/log"
)

// The Datastore entity kind used for stored riddles
const puzzleKind = "Riddle"

// PuzzleStore saves and loads riddles in Google Cloud Datastore
type PuzzleStore struct {
	client *datastore.Client
}

// puzzleEntity is the Datastore representation of a stored riddle
type puzzleEntity struct {
	Board     []string  `datastore:"board,noindex"`
	Rack      string    `datastore:"rack,noindex"`
	Move      string    `datastore:"move,noindex"`
	Coord     string    `datastore:"coord,noindex"`
	Score     int       `datastore:"score"`
	IsBingo   bool      `datastore:"isBingo"`
	CreatedAt time.Time `datastore:"createdAt"`
}

// NewPuzzleStore connects to the Datastore of the given project
func NewPuzzleStore(ctx context.Context, projectID string) (*PuzzleStore, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("connecting to datastore: %w", err)
	}
	return &PuzzleStore{client: client}, nil
}

// Close releases the store's Datastore client
func (store *PuzzleStore) Close() error {
	return store.client.Close()
}

// Save stores a riddle and returns its assigned numeric id
func (store *PuzzleStore) Save(ctx context.Context, riddle *Riddle) (int64, error) {
	entity := &puzzleEntity{
		Board:     riddle.Board,
		Rack:      riddle.Rack,
		Move:      riddle.Solution.Move,
		Coord:     riddle.Solution.Coord,
		Score:     riddle.Solution.Score,
		IsBingo:   riddle.Analysis.IsBingo,
		CreatedAt: time.Now().UTC(),
	}
	key, err := store.client.Put(ctx, datastore.IncompleteKey(puzzleKind, nil), entity)
	if err != nil {
		return 0, fmt.Errorf("saving riddle: %w", err)
	}
	log.Info().
		Int64("id", key.ID).
		Str("coord", entity.Coord).
		Int("score", entity.Score).
		Msg("saved riddle")
	return key.ID, nil
}

// riddleFromEntity rebuilds a Riddle from its stored form. Only
// the fields needed to present the puzzle are retained; the full
// move analysis is not persisted.
func riddleFromEntity(entity *puzzleEntity) *Riddle {
	return &Riddle{
		Board: entity.Board,
		Rack:  entity.Rack,
		Solution: Solution{
			Move:  entity.Move,
			Coord: entity.Coord,
			Score: entity.Score,
		},
		Analysis: Analysis{
			BestMoveScore: entity.Score,
			IsBingo:       entity.IsBingo,
		},
	}
}

// Load fetches a stored riddle by its numeric id
func (store *PuzzleStore) Load(ctx context.Context, id int64) (*Riddle, error) {
	var entity puzzleEntity
	if err := store.client.Get(ctx, datastore.IDKey(puzzleKind, id, nil), &entity); err != nil {
		return nil, fmt.Errorf("loading riddle %d: %w", id, err)
	}
	return riddleFromEntity(&entity), nil
}

// Latest returns up to n of the most recently stored riddles,
// newest first
func (store *PuzzleStore) Latest(ctx context.Context, n int) ([]*Riddle, error) {
	query := datastore.NewQuery(puzzleKind).Order("-createdAt").Limit(n)
	var entities []*puzzleEntity
	if _, err := store.client.GetAll(ctx, query, &entities); err != nil {
		return nil, fmt.Errorf("querying riddles: %w", err)
	}
	riddles := make([]*Riddle, len(entities))
	for i, entity := range entities {
		riddles[i] = riddleFromEntity(entity)
	}
	return riddles, nil
}
