package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/store"
	"github.com/gametaverns/tournament-engine/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const maxNameLength = 100

type ParticipantService struct {
	db    *sqlx.DB
	store *store.TournamentStore
}

func NewParticipantService(db *sqlx.DB, store *store.TournamentStore) *ParticipantService {
	return &ParticipantService{db: db, store: store}
}

type ParticipantInput struct {
	Name   string     `json:"player_name"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Seed   *int       `json:"seed,omitempty"`
}

func (s *ParticipantService) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]bracket.Participant, error) {
	return s.store.GetParticipants(ctx, eventID)
}

// AddParticipant appends a player to the roster. Only Swiss events accept
// late entries once play has started.
func (s *ParticipantService) AddParticipant(ctx context.Context, eventID uuid.UUID, input ParticipantInput) (*bracket.Participant, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.checkRosterOpenTx(ctx, tx, eventID); err != nil {
		return nil, err
	}

	p, err := s.addTx(ctx, tx, eventID, input)
	if err != nil {
		return nil, err
	}

	return p, tx.Commit()
}

// ImportParticipants adds one participant per non-blank line of text.
func (s *ParticipantService) ImportParticipants(ctx context.Context, eventID uuid.UUID, text string) ([]bracket.Participant, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.checkRosterOpenTx(ctx, tx, eventID); err != nil {
		return nil, err
	}

	var added []bracket.Participant
	for _, line := range strings.Split(text, "\n") {
		name := utils.StringOrNil(line)
		if name == nil {
			continue
		}
		p, err := s.addTx(ctx, tx, eventID, ParticipantInput{Name: *name})
		if err != nil {
			return nil, err
		}
		added = append(added, *p)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	slog.Info("roster imported", "event_id", eventID, "added", len(added))
	return added, nil
}

// RemoveParticipant deletes a player from the roster. Rosters are frozen
// while the tournament is in progress.
func (s *ParticipantService) RemoveParticipant(ctx context.Context, eventID, participantID uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cfg, _, err := loadConfigTx(ctx, tx, s.store, eventID)
	if err != nil {
		return err
	}
	if cfg.Status == bracket.TournamentInProgress {
		return fmt.Errorf("%w: participants cannot be removed", ErrTournamentInProgress)
	}

	if err := s.store.DeleteParticipant(ctx, tx, eventID, participantID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *ParticipantService) checkRosterOpenTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID) error {
	cfg, _, err := loadConfigTx(ctx, tx, s.store, eventID)
	if err != nil {
		return err
	}
	switch {
	case cfg.Status == bracket.TournamentCompleted:
		return ErrTournamentCompleted
	case cfg.Status == bracket.TournamentInProgress && cfg.Format != bracket.Swiss:
		return fmt.Errorf("%w: %s rosters are closed", ErrTournamentInProgress, cfg.Format)
	}
	return nil
}

func (s *ParticipantService) addTx(ctx context.Context, tx *sqlx.Tx, eventID uuid.UUID, input ParticipantInput) (*bracket.Participant, error) {
	name := utils.StringOrNil(input.Name)
	if name == nil {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if len(*name) > maxNameLength {
		return nil, fmt.Errorf("%w: player name '%s' exceeds %d characters", ErrInvalidInput, *name, maxNameLength)
	}
	if input.Seed != nil && *input.Seed < 1 {
		return nil, fmt.Errorf("%w: seed must be positive", ErrInvalidInput)
	}

	position, err := s.store.NextPositionTx(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	p := &bracket.Participant{
		ID:       uuid.New(),
		EventID:  eventID,
		Name:     *name,
		UserID:   input.UserID,
		Seed:     input.Seed,
		Position: position,
	}
	if err := s.store.CreateParticipant(ctx, tx, p); err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}
	return p, nil
}
