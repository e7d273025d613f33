package bracket

import (
	"fmt"

	"github.com/google/uuid"
)

type position struct {
	round  int
	number int
}

// LinkAdvancement points every winners-side match at the match its winner
// plays next: match k of round r feeds match ceil(k/2) of round r+1, odd k
// into slot 1 and even k into slot 2. The final keeps no link. Matches must
// already have IDs.
func LinkAdvancement(matches []Match) {
	index := make(map[position]int, len(matches))
	for i, m := range matches {
		if m.BracketPosition == PositionWinners {
			index[position{m.RoundNumber, m.MatchNumber}] = i
		}
	}

	for i := range matches {
		m := &matches[i]
		if m.BracketPosition != PositionWinners {
			continue
		}
		j, ok := index[position{m.RoundNumber + 1, (m.MatchNumber + 1) / 2}]
		if !ok {
			m.NextMatchID = nil
			m.NextSlot = nil
			continue
		}
		nextID := matches[j].ID
		slot := 2 - m.MatchNumber%2
		m.NextMatchID = &nextID
		m.NextSlot = &slot
	}
}

// AdvanceByes copies the winner of every bye into its next match.
func AdvanceByes(matches []Match) {
	byID := make(map[uuid.UUID]*Match, len(matches))
	for i := range matches {
		byID[matches[i].ID] = &matches[i]
	}

	for i := range matches {
		m := &matches[i]
		if m.Status != MatchBye || m.NextMatchID == nil || m.NextSlot == nil {
			continue
		}
		if next, ok := byID[*m.NextMatchID]; ok {
			next.SetSlot(*m.NextSlot, copyID(m.WinnerID))
		}
	}
}

// AdvanceWinner writes the winner of a settled match into its slot of next.
func AdvanceWinner(from *Match, next *Match) error {
	if from.WinnerID == nil || !from.Status.Settled() {
		return fmt.Errorf("%w: match %s has no winner to advance", ErrInvalidTransition, from.ID)
	}
	if from.NextMatchID == nil || *from.NextMatchID != next.ID || from.NextSlot == nil {
		return fmt.Errorf("match %s does not feed match %s", from.ID, next.ID)
	}
	if next.Status.Settled() {
		return fmt.Errorf("%w: match %s is already decided", ErrInvalidTransition, next.ID)
	}
	next.SetSlot(*from.NextSlot, copyID(from.WinnerID))
	return nil
}
