package bracket

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID      uuid.UUID `db:"id" json:"id"`
	EventID uuid.UUID `db:"event_id" json:"event_id"`

	// Position in the tournament for reconstructing the view
	RoundNumber     int             `db:"round_number" json:"round_number"`
	MatchNumber     int             `db:"match_number" json:"match_number"`
	BracketPosition BracketPosition `db:"bracket_position" json:"bracket_position,omitempty"`

	Player1ID *uuid.UUID `db:"player1_id" json:"player1_id,omitempty"`
	Player2ID *uuid.UUID `db:"player2_id" json:"player2_id,omitempty"`
	WinnerID  *uuid.UUID `db:"winner_id" json:"winner_id,omitempty"`

	Player1Score *int        `db:"player1_score" json:"player1_score,omitempty"`
	Player2Score *int        `db:"player2_score" json:"player2_score,omitempty"`
	Status       MatchStatus `db:"status" json:"status"`

	// Where the winner goes next; elimination formats only
	NextMatchID *uuid.UUID `db:"next_match_id" json:"next_match_id,omitempty"`
	NextSlot    *int       `db:"next_slot" json:"next_slot,omitempty"`

	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`
	TableLabel  *string    `db:"table_label" json:"table_label,omitempty"`

	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasParticipant reports whether id occupies either slot.
func (m *Match) HasParticipant(id uuid.UUID) bool {
	return (m.Player1ID != nil && *m.Player1ID == id) || (m.Player2ID != nil && *m.Player2ID == id)
}

// Opponent returns the participant facing id, or nil for byes and empty slots.
func (m *Match) Opponent(id uuid.UUID) *uuid.UUID {
	switch {
	case m.Player1ID != nil && *m.Player1ID == id:
		return m.Player2ID
	case m.Player2ID != nil && *m.Player2ID == id:
		return m.Player1ID
	}
	return nil
}

// Loser returns the participant beaten in a completed match with a winner.
func (m *Match) Loser() *uuid.UUID {
	if m.Status != MatchCompleted || m.WinnerID == nil {
		return nil
	}
	return m.Opponent(*m.WinnerID)
}

// SetSlot places a participant into slot 1 or 2.
func (m *Match) SetSlot(slot int, id *uuid.UUID) {
	if slot == 1 {
		m.Player1ID = id
	} else {
		m.Player2ID = id
	}
}

// markBye turns a match with exactly one participant into a resolved bye.
// The present participant is moved into slot 1.
func (m *Match) markBye() {
	if (m.Player1ID == nil) == (m.Player2ID == nil) {
		return
	}
	if m.Player1ID == nil {
		m.Player1ID, m.Player2ID = m.Player2ID, nil
	}
	winner := *m.Player1ID
	m.WinnerID = &winner
	m.Status = MatchBye
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
