package bracket

import (
	"fmt"

	"github.com/google/uuid"
)

// Generate produces the initial matches for cfg.Format. participants must be
// in seed order. Swiss only yields round 1; later rounds come from
// GenerateSwissRound once results are in.
func Generate(cfg Config, participants []Participant) ([]Match, error) {
	switch cfg.Format {
	case SingleElimination:
		return GenerateSingleElimination(cfg.EventID, participants, cfg.SeedMethod), nil
	case RoundRobin:
		return GenerateRoundRobin(cfg.EventID, participants), nil
	case Swiss:
		return GenerateSwissRound(cfg.EventID, participants, 1), nil
	case DoubleElimination:
		return nil, fmt.Errorf("%w: %s", ErrFormatNotSupported, cfg.Format)
	}
	return nil, fmt.Errorf("%w: %q", ErrFormatNotSupported, cfg.Format)
}

// AssignIDs gives every match without an identifier a fresh one.
func AssignIDs(matches []Match, newID func() uuid.UUID) {
	for i := range matches {
		if matches[i].ID == uuid.Nil {
			matches[i].ID = newID()
		}
	}
}

// TotalRounds reports how many rounds the tournament will run.
func TotalRounds(cfg Config, participants int, matches []Match) int {
	if cfg.Format == Swiss {
		return cfg.TotalSwissRounds(participants)
	}
	total := 0
	for _, m := range matches {
		total = max(total, m.RoundNumber)
	}
	return total
}
