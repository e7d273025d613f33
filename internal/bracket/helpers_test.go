package bracket

import (
	"fmt"

	"github.com/google/uuid"
)

var testEventID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// makeParticipants returns n participants with predictable IDs, in seed order.
func makeParticipants(n int) []Participant {
	participants := make([]Participant, n)
	for i := range participants {
		seed := i + 1
		participants[i] = Participant{
			ID:       uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1)),
			EventID:  testEventID,
			Name:     fmt.Sprintf("Player %d", i+1),
			Seed:     &seed,
			Position: i + 1,
		}
	}
	return participants
}

func idOf(p Participant) *uuid.UUID {
	id := p.ID
	return &id
}

func matchesInRound(matches []Match, round int) []Match {
	var out []Match
	for _, m := range matches {
		if m.RoundNumber == round {
			out = append(out, m)
		}
	}
	return out
}

func find(matches []Match, round, number int) *Match {
	for i := range matches {
		if matches[i].RoundNumber == round && matches[i].MatchNumber == number {
			return &matches[i]
		}
	}
	return nil
}
