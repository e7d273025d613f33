package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/metrics"
	"github.com/gametaverns/tournament-engine/internal/store"
	"github.com/gametaverns/tournament-engine/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MatchService struct {
	db      *sqlx.DB
	store   *store.TournamentStore
	metrics metrics.Metrics
}

func NewMatchService(db *sqlx.DB, store *store.TournamentStore, m metrics.Metrics) *MatchService {
	return &MatchService{db: db, store: store, metrics: m}
}

// ResultInput is a reported result. Version, when set, must equal the
// match's current version.
type ResultInput struct {
	bracket.Result
	Version *int `json:"version,omitempty"`
}

type ScheduleInput struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	TableLabel  string     `json:"table_label"`
	Version     *int       `json:"version,omitempty"`
}

func (s *MatchService) GetMatch(ctx context.Context, matchID uuid.UUID) (*bracket.Match, error) {
	return s.store.GetMatch(ctx, matchID)
}

// RecordResult validates and stores a result. In elimination formats the
// winner moves into the next match, and deciding the final completes the
// tournament. Standings are rebuilt before the transaction commits.
func (s *MatchService) RecordResult(ctx context.Context, matchID uuid.UUID, input ResultInput) (*bracket.Match, error) {
	match, err := s.recordResult(ctx, matchID, input)
	if err != nil {
		if IsValidationError(err) || isStateError(err) {
			s.metrics.IncResultsRejected()
		}
		return nil, err
	}
	s.metrics.IncResultsRecorded(string(match.Status))
	return match, nil
}

func (s *MatchService) recordResult(ctx context.Context, matchID uuid.UUID, input ResultInput) (*bracket.Match, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	match, err := s.store.GetMatchTx(ctx, tx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := s.store.LockEventTx(ctx, tx, match.EventID); err != nil {
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	// Re-read under the lock; another result may have committed meanwhile
	if match, err = s.store.GetMatchTx(ctx, tx, matchID); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := checkVersion(match, input.Version); err != nil {
		return nil, err
	}

	cfg, err := s.store.GetConfigTx(ctx, tx, match.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament config: %w", err)
	}
	switch cfg.Status {
	case bracket.TournamentSetup:
		return nil, ErrTournamentNotStarted
	case bracket.TournamentCompleted:
		return nil, ErrTournamentCompleted
	}

	if err := match.ApplyResult(input.Result, cfg.Format); err != nil {
		return nil, err
	}
	if err := updateMatch(ctx, tx, s.store, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	completed := false
	if match.Status == bracket.MatchCompleted && cfg.Format.IsElimination() {
		if match.NextMatchID != nil {
			next, err := s.store.GetMatchTx(ctx, tx, *match.NextMatchID)
			if err != nil {
				return nil, fmt.Errorf("failed to get next match: %w", err)
			}
			if err := bracket.AdvanceWinner(match, next); err != nil {
				return nil, err
			}
			if err := updateMatch(ctx, tx, s.store, next); err != nil {
				return nil, fmt.Errorf("failed to update next match: %w", err)
			}
		} else {
			// No next match means this was the final
			if err := s.store.UpdateTournamentStateTx(ctx, tx, match.EventID, match.RoundNumber, bracket.TournamentCompleted); err != nil {
				return nil, fmt.Errorf("failed to update tournament status: %w", err)
			}
			completed = true
		}
	}

	if _, err := refreshStandingsTx(ctx, tx, s.store, cfg); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	slog.Info("result recorded", "event_id", match.EventID, "match_id", match.ID, "status", match.Status)
	if completed {
		s.metrics.IncTournamentsCompleted()
		slog.Info("tournament completed", "event_id", match.EventID)
	}
	return match, nil
}

// ScheduleMatch sets or clears when and where a match is played.
func (s *MatchService) ScheduleMatch(ctx context.Context, matchID uuid.UUID, input ScheduleInput) (*bracket.Match, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	match, err := s.store.GetMatchTx(ctx, tx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if err := checkVersion(match, input.Version); err != nil {
		return nil, err
	}

	match.ScheduledAt = input.ScheduledAt
	match.TableLabel = utils.StringOrNil(input.TableLabel)

	if err := updateMatch(ctx, tx, s.store, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return match, tx.Commit()
}
