package store

import (
	"context"
	"fmt"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const matchOrder = "ORDER BY round_number ASC, match_number ASC"

// CreateMatches inserts matches in batches. New rows start at version 1.
func (s *TournamentStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []bracket.Match) error {
	for start := 0; start < len(matches); start += insertBatchSize {
		end := min(start+insertBatchSize, len(matches))
		_, err := tx.NamedExecContext(ctx, `INSERT INTO event_tournament_matches
			(id, event_id, round_number, match_number, bracket_position, player1_id, player2_id, winner_id,
			 player1_score, player2_score, status, next_match_id, next_slot, scheduled_at, table_label, version)
			VALUES (:id, :event_id, :round_number, :match_number, :bracket_position, :player1_id, :player2_id, :winner_id,
			 :player1_score, :player2_score, :status, :next_match_id, :next_slot, :scheduled_at, :table_label, 1)`, matches[start:end])
		if err != nil {
			return fmt.Errorf("failed to insert matches %d-%d: %w", start, end, err)
		}
	}
	return nil
}

// DeleteMatchesTx removes every match of the event.
func (s *TournamentStore) DeleteMatchesTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) error {
	_, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM event_tournament_matches WHERE event_id = ?"), eventID)
	return err
}

func (s *TournamentStore) GetMatch(ctx context.Context, id uuid.UUID) (*bracket.Match, error) {
	var match bracket.Match
	err := s.db.GetContext(ctx, &match, s.db.Rebind("SELECT * FROM event_tournament_matches WHERE id = ?"), id)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *TournamentStore) GetMatchTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*bracket.Match, error) {
	var match bracket.Match
	err := tx.GetContext(ctx, &match, tx.Rebind("SELECT * FROM event_tournament_matches WHERE id = ?"), id)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *TournamentStore) GetMatches(ctx context.Context, eventID uuid.UUID) ([]bracket.Match, error) {
	var matches []bracket.Match
	err := s.db.SelectContext(ctx, &matches, s.db.Rebind("SELECT * FROM event_tournament_matches WHERE event_id = ? "+matchOrder), eventID)
	return matches, err
}

func (s *TournamentStore) GetMatchesTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) ([]bracket.Match, error) {
	var matches []bracket.Match
	err := tx.SelectContext(ctx, &matches, tx.Rebind("SELECT * FROM event_tournament_matches WHERE event_id = ? "+matchOrder), eventID)
	return matches, err
}

// UpdateMatch writes the mutable columns of m if the stored version still
// matches m.Version, then bumps m.Version. A mismatch returns ErrStaleVersion.
func (s *TournamentStore) UpdateMatch(ctx context.Context, tx *sqlx.Tx, m *bracket.Match) error {
	result, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE event_tournament_matches
		SET player1_id = ?, player2_id = ?, winner_id = ?, player1_score = ?, player2_score = ?, status = ?,
			scheduled_at = ?, table_label = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND version = ?`),
		m.Player1ID, m.Player2ID, m.WinnerID, m.Player1Score, m.Player2Score, m.Status,
		m.ScheduledAt, m.TableLabel, m.ID, m.Version)
	if err != nil {
		return err
	}
	if err := checkAffectedRows(result, ErrStaleVersion); err != nil {
		return err
	}
	m.Version++
	return nil
}
