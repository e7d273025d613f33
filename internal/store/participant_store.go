package store

import (
	"context"
	"database/sql"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const participantOrder = "ORDER BY position ASC, created_at ASC"

func (s *TournamentStore) CreateParticipant(ctx context.Context, tx *sqlx.Tx, p *bracket.Participant) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO event_tournament_players (id, event_id, player_name, user_id, seed, position)
		VALUES (:id, :event_id, :player_name, :user_id, :seed, :position)`, p)
	return err
}

// NextPositionTx returns the roster position for a newly added participant.
func (s *TournamentStore) NextPositionTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) (int, error) {
	var next int
	err := tx.GetContext(ctx, &next, tx.Rebind("SELECT COALESCE(MAX(position), 0) + 1 FROM event_tournament_players WHERE event_id = ?"), eventID)
	return next, err
}

func (s *TournamentStore) GetParticipants(ctx context.Context, eventID uuid.UUID) ([]bracket.Participant, error) {
	var participants []bracket.Participant
	err := s.db.SelectContext(ctx, &participants, s.db.Rebind("SELECT * FROM event_tournament_players WHERE event_id = ? "+participantOrder), eventID)
	return participants, err
}

func (s *TournamentStore) GetParticipantsTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) ([]bracket.Participant, error) {
	var participants []bracket.Participant
	err := tx.SelectContext(ctx, &participants, tx.Rebind("SELECT * FROM event_tournament_players WHERE event_id = ? "+participantOrder), eventID)
	return participants, err
}

func (s *TournamentStore) DeleteParticipant(ctx context.Context, tx *sqlx.Tx, eventID, participantID uuid.UUID) error {
	result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM event_tournament_players WHERE id = ? AND event_id = ?"), participantID, eventID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, sql.ErrNoRows)
}

// UpdateTalliesTx writes the derived standings columns of every given participant.
func (s *TournamentStore) UpdateTalliesTx(ctx context.Context, tx *sqlx.Tx, participants []bracket.Participant) error {
	query := tx.Rebind(`UPDATE event_tournament_players
		SET wins = ?, losses = ?, draws = ?, points = ?, tiebreaker_score = ?, is_eliminated = ?
		WHERE id = ?`)
	for _, p := range participants {
		_, err := tx.ExecContext(ctx, query, p.Wins, p.Losses, p.Draws, p.Points, p.TiebreakerScore, p.IsEliminated, p.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
