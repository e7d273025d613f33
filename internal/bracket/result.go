package bracket

import (
	"fmt"

	"github.com/google/uuid"
)

// Result is a reported outcome. A nil winner without Draw leaves the match in
// progress, which is how live scores are recorded.
type Result struct {
	WinnerID     *uuid.UUID `json:"winner_id,omitempty"`
	Draw         bool       `json:"draw,omitempty"`
	Player1Score *int       `json:"player1_score,omitempty"`
	Player2Score *int       `json:"player2_score,omitempty"`
}

// ApplyResult validates r against the match and moves it along
// pending -> in_progress -> completed. Completed matches and byes are final.
func (m *Match) ApplyResult(r Result, format Format) error {
	if m.Status.Settled() {
		return fmt.Errorf("%w: match is already %s", ErrInvalidTransition, m.Status)
	}
	if m.Player1ID == nil || m.Player2ID == nil {
		return ErrMatchNotReady
	}
	if r.WinnerID != nil && r.Draw {
		return fmt.Errorf("%w: a match cannot have a winner and be drawn", ErrInvalidResult)
	}
	if r.WinnerID != nil && !m.HasParticipant(*r.WinnerID) {
		return fmt.Errorf("%w: winner is not part of this match", ErrInvalidResult)
	}
	if r.Draw && format.IsElimination() {
		return fmt.Errorf("%w: elimination matches cannot end in a draw", ErrInvalidResult)
	}
	if negative(r.Player1Score) || negative(r.Player2Score) {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidResult)
	}

	m.Player1Score = r.Player1Score
	m.Player2Score = r.Player2Score

	switch {
	case r.WinnerID != nil:
		m.WinnerID = copyID(r.WinnerID)
		m.Status = MatchCompleted
	case r.Draw:
		m.WinnerID = nil
		m.Status = MatchCompleted
	default:
		m.WinnerID = nil
		m.Status = MatchInProgress
	}
	return nil
}

func negative(score *int) bool {
	return score != nil && *score < 0
}
