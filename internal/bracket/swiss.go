package bracket

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// GenerateSwissRound pairs one round of a Swiss event.
//
// Participants are ranked by points, then tiebreaker score, both descending;
// equal records keep their input order. The ranked list is paired top-down in
// adjacent twos and an odd participant left at the bottom gets a bye. Earlier
// pairings are not consulted, so rematches across rounds are possible.
func GenerateSwissRound(eventID uuid.UUID, participants []Participant, round int) []Match {
	if len(participants) < 2 {
		return nil
	}

	ranked := RankForSwiss(participants)
	matches := make([]Match, 0, (len(ranked)+1)/2)

	for i := 0; i < len(ranked); i += 2 {
		m := Match{
			EventID:     eventID,
			RoundNumber: round,
			MatchNumber: len(matches) + 1,
			Status:      MatchPending,
		}
		p1 := ranked[i].ID
		m.Player1ID = &p1
		if i+1 < len(ranked) {
			p2 := ranked[i+1].ID
			m.Player2ID = &p2
		}
		m.markBye()
		matches = append(matches, m)
	}

	return matches
}

// RankForSwiss returns a copy of participants in Swiss pairing order.
func RankForSwiss(participants []Participant) []Participant {
	ranked := slices.Clone(participants)
	slices.SortStableFunc(ranked, func(a, b Participant) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(b.TiebreakerScore, a.TiebreakerScore)
	})
	return ranked
}
