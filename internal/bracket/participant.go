package bracket

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	ID      uuid.UUID  `db:"id" json:"id"`
	EventID uuid.UUID  `db:"event_id" json:"event_id"`
	Name    string     `db:"player_name" json:"player_name"`
	UserID  *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	Seed    *int       `db:"seed" json:"seed,omitempty"`

	// Roster order, used to break seed ties and to order unseeded players
	Position int `db:"position" json:"position"`

	IsEliminated    bool      `db:"is_eliminated" json:"is_eliminated"`
	Wins            int       `db:"wins" json:"wins"`
	Losses          int       `db:"losses" json:"losses"`
	Draws           int       `db:"draws" json:"draws"`
	Points          int       `db:"points" json:"points"`
	TiebreakerScore float64   `db:"tiebreaker_score" json:"tiebreaker_score"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
