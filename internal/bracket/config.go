package bracket

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPointsWin  = 3
	DefaultPointsDraw = 1
	DefaultPointsLoss = 0
)

// Config is the per-event tournament configuration. One row exists per event.
type Config struct {
	EventID      uuid.UUID        `db:"event_id" json:"event_id"`
	Format       Format           `db:"format" json:"format"`
	CurrentRound int              `db:"current_round" json:"current_round"`
	Status       TournamentStatus `db:"status" json:"status"`
	SeedMethod   SeedMethod       `db:"seed_method" json:"seed_method"`
	PointsWin    int              `db:"points_win" json:"points_win"`
	PointsDraw   int              `db:"points_draw" json:"points_draw"`
	PointsLoss   int              `db:"points_loss" json:"points_loss"`
	Tiebreaker   Tiebreaker       `db:"tiebreaker" json:"tiebreaker"`

	// Number of Swiss rounds to play. Nil falls back to ceil(log2(players)).
	SwissRounds *int `db:"swiss_rounds" json:"swiss_rounds,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func DefaultConfig(eventID uuid.UUID) Config {
	return Config{
		EventID:    eventID,
		Format:     SingleElimination,
		Status:     TournamentSetup,
		SeedMethod: SeedStandard,
		PointsWin:  DefaultPointsWin,
		PointsDraw: DefaultPointsDraw,
		PointsLoss: DefaultPointsLoss,
		Tiebreaker: TiebreakBuchholz,
	}
}

// TotalSwissRounds returns how many rounds a Swiss event with the given roster size runs.
func (c Config) TotalSwissRounds(participants int) int {
	if c.SwissRounds != nil && *c.SwissRounds > 0 {
		return *c.SwissRounds
	}
	if participants < 2 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(participants))))
}
