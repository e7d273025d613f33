package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/config"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TournamentStore persists tournament configuration, rosters and matches.
// Writes run inside a caller-owned transaction; reads without a Tx suffix use
// the pool directly.
type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) GetConfig(ctx context.Context, eventID uuid.UUID) (*bracket.Config, error) {
	var cfg bracket.Config
	err := s.db.GetContext(ctx, &cfg, s.db.Rebind("SELECT * FROM event_tournament_config WHERE event_id = ?"), eventID)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *TournamentStore) GetConfigTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) (*bracket.Config, error) {
	var cfg bracket.Config
	err := tx.GetContext(ctx, &cfg, tx.Rebind("SELECT * FROM event_tournament_config WHERE event_id = ?"), eventID)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LockEventTx holds the event's config row until tx ends so writers of one
// event run one after another. An event without a config row locks nothing.
func (s *TournamentStore) LockEventTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) error {
	if tx.DriverName() == config.DriverSQLite {
		// No row locks in SQLite; a no-op write takes the database write lock
		_, err := tx.ExecContext(ctx, "UPDATE event_tournament_config SET event_id = event_id WHERE event_id = ?", eventID)
		return err
	}

	var locked uuid.UUID
	err := tx.GetContext(ctx, &locked, tx.Rebind("SELECT event_id FROM event_tournament_config WHERE event_id = ? FOR UPDATE"), eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// SaveConfig inserts the configuration or overwrites the settings of an existing one.
func (s *TournamentStore) SaveConfig(ctx context.Context, tx *sqlx.Tx, cfg *bracket.Config) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO event_tournament_config
		(event_id, format, current_round, status, seed_method, points_win, points_draw, points_loss, tiebreaker, swiss_rounds)
		VALUES (:event_id, :format, :current_round, :status, :seed_method, :points_win, :points_draw, :points_loss, :tiebreaker, :swiss_rounds)
		ON CONFLICT (event_id) DO UPDATE SET
			format = excluded.format,
			seed_method = excluded.seed_method,
			points_win = excluded.points_win,
			points_draw = excluded.points_draw,
			points_loss = excluded.points_loss,
			tiebreaker = excluded.tiebreaker,
			swiss_rounds = excluded.swiss_rounds,
			updated_at = CURRENT_TIMESTAMP`, cfg)
	return err
}

// UpdateTournamentStateTx moves the event to a new round and status.
func (s *TournamentStore) UpdateTournamentStateTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID, round int, status bracket.TournamentStatus) error {
	result, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE event_tournament_config
		SET current_round = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE event_id = ?`), round, status, eventID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, sql.ErrNoRows)
}
