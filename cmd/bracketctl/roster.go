package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// roster is the YAML layout accepted by preview:
//
//	format: single_elimination
//	seed_method: balanced
//	players:
//	  - name: Alice
//	    seed: 1
//	  - name: Bob
type roster struct {
	Format      string         `yaml:"format"`
	SeedMethod  string         `yaml:"seed_method"`
	SwissRounds *int           `yaml:"swiss_rounds"`
	Players     []rosterPlayer `yaml:"players"`
}

type rosterPlayer struct {
	Name string `yaml:"name"`
	Seed *int   `yaml:"seed"`
}

// loadRoster decodes a roster and turns it into a config and a seed-ordered
// participant list. Missing settings fall back to the defaults.
func loadRoster(r io.Reader) (bracket.Config, []bracket.Participant, error) {
	var doc roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return bracket.Config{}, nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	eventID := uuid.New()
	cfg := bracket.DefaultConfig(eventID)
	if doc.Format != "" {
		format, err := bracket.ParseFormat(doc.Format)
		if err != nil {
			return bracket.Config{}, nil, err
		}
		cfg.Format = format
	}
	if doc.SeedMethod != "" {
		method, err := bracket.ParseSeedMethod(doc.SeedMethod)
		if err != nil {
			return bracket.Config{}, nil, err
		}
		cfg.SeedMethod = method
	}
	if doc.SwissRounds != nil {
		if *doc.SwissRounds < 1 {
			return bracket.Config{}, nil, fmt.Errorf("%w: swiss_rounds must be at least 1", bracket.ErrInvalidConfig)
		}
		cfg.SwissRounds = doc.SwissRounds
	}

	participants := make([]bracket.Participant, 0, len(doc.Players))
	for i, p := range doc.Players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return bracket.Config{}, nil, fmt.Errorf("player %d has no name", i+1)
		}
		participants = append(participants, bracket.Participant{
			ID:       uuid.New(),
			EventID:  eventID,
			Name:     name,
			Seed:     p.Seed,
			Position: i + 1,
		})
	}

	return cfg, bracket.SortBySeed(participants), nil
}
