package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/metrics"
	"github.com/gametaverns/tournament-engine/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

type TournamentService struct {
	db      *sqlx.DB
	store   *store.TournamentStore
	metrics metrics.Metrics
}

func NewTournamentService(db *sqlx.DB, store *store.TournamentStore, m metrics.Metrics) *TournamentService {
	return &TournamentService{db: db, store: store, metrics: m}
}

// ConfigInput carries the organiser's settings. Empty or nil fields keep their
// current value.
type ConfigInput struct {
	Format      string `json:"format"`
	SeedMethod  string `json:"seed_method"`
	Tiebreaker  string `json:"tiebreaker"`
	PointsWin   *int   `json:"points_win"`
	PointsDraw  *int   `json:"points_draw"`
	PointsLoss  *int   `json:"points_loss"`
	SwissRounds *int   `json:"swiss_rounds"`
}

type TournamentData struct {
	Config       *bracket.Config       `json:"config"`
	Participants []bracket.Participant `json:"participants"`
	Matches      []bracket.Match       `json:"matches"`
	Standings    []bracket.Standing    `json:"standings"`
	TotalRounds  int                   `json:"total_rounds"`
	NextMatchID  *uuid.UUID            `json:"next_match_id,omitempty"`
}

// SaveConfig creates the configuration on first use and updates it afterwards.
// The format cannot change once the tournament has started.
func (s *TournamentService) SaveConfig(ctx context.Context, eventID uuid.UUID, input ConfigInput) (*bracket.Config, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	cfg, _, err := loadConfigTx(ctx, tx, s.store, eventID)
	if err != nil {
		return nil, err
	}

	if input.Format != "" {
		format, err := bracket.ParseFormat(input.Format)
		if err != nil {
			return nil, err
		}
		if format != cfg.Format && cfg.Status == bracket.TournamentInProgress {
			return nil, fmt.Errorf("%w: format cannot change from %s to %s", ErrTournamentInProgress, cfg.Format, format)
		}
		cfg.Format = format
	}
	if input.SeedMethod != "" {
		if cfg.SeedMethod, err = bracket.ParseSeedMethod(input.SeedMethod); err != nil {
			return nil, err
		}
	}
	if input.Tiebreaker != "" {
		if cfg.Tiebreaker, err = bracket.ParseTiebreaker(input.Tiebreaker); err != nil {
			return nil, err
		}
	}
	for _, points := range []struct {
		name  string
		value *int
		dst   *int
	}{
		{"points_win", input.PointsWin, &cfg.PointsWin},
		{"points_draw", input.PointsDraw, &cfg.PointsDraw},
		{"points_loss", input.PointsLoss, &cfg.PointsLoss},
	} {
		if points.value == nil {
			continue
		}
		if *points.value < 0 {
			return nil, fmt.Errorf("%w: %s cannot be negative", bracket.ErrInvalidConfig, points.name)
		}
		*points.dst = *points.value
	}
	if input.SwissRounds != nil {
		if *input.SwissRounds < 1 {
			return nil, fmt.Errorf("%w: swiss_rounds must be at least 1", bracket.ErrInvalidConfig)
		}
		cfg.SwissRounds = input.SwissRounds
	}

	if err := s.store.SaveConfig(ctx, tx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save tournament config: %w", err)
	}
	saved, err := s.store.GetConfigTx(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	return saved, tx.Commit()
}

// GenerateBracket replaces every match of the event with a freshly generated
// bracket (or first Swiss round) and starts round 1.
func (s *TournamentService) GenerateBracket(ctx context.Context, eventID uuid.UUID) ([]bracket.Match, error) {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.store.LockEventTx(ctx, tx, eventID); err != nil {
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	cfg, found, err := loadConfigTx(ctx, tx, s.store, eventID)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := s.store.SaveConfig(ctx, tx, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	participants, err := s.store.GetParticipantsTx(ctx, tx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: event has %d", bracket.ErrInsufficientParticipants, len(participants))
	}

	matches, err := bracket.Generate(*cfg, bracket.SortBySeed(participants))
	if err != nil {
		return nil, err
	}
	bracket.AssignIDs(matches, uuid.New)
	bracket.LinkAdvancement(matches)
	bracket.AdvanceByes(matches)

	if err := s.store.DeleteMatchesTx(ctx, tx, eventID); err != nil {
		return nil, fmt.Errorf("failed to clear matches: %w", err)
	}
	if err := s.store.CreateMatches(ctx, tx, matches); err != nil {
		return nil, err
	}
	if err := s.store.UpdateTournamentStateTx(ctx, tx, eventID, 1, bracket.TournamentInProgress); err != nil {
		return nil, fmt.Errorf("failed to start tournament: %w", err)
	}
	if _, err := refreshStandingsTx(ctx, tx, s.store, cfg); err != nil {
		return nil, err
	}

	stored, err := s.store.GetMatchesTx(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.metrics.IncBracketsGenerated(string(cfg.Format))
	s.metrics.ObserveGenerationDuration(time.Since(start).Seconds())
	slog.Info("bracket generated", "event_id", eventID, "format", cfg.Format, "participants", len(participants), "matches", len(stored))

	return stored, nil
}

// AdvanceRound closes the current round once every match in it is settled.
// Swiss pairs the next round from the standings at that point. Closing the
// last round completes the tournament.
func (s *TournamentService) AdvanceRound(ctx context.Context, eventID uuid.UUID) (*bracket.Config, error) {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.store.LockEventTx(ctx, tx, eventID); err != nil {
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	cfg, err := s.store.GetConfigTx(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}
	switch cfg.Status {
	case bracket.TournamentSetup:
		return nil, ErrTournamentNotStarted
	case bracket.TournamentCompleted:
		return nil, ErrTournamentCompleted
	}

	matches, err := s.store.GetMatchesTx(ctx, tx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	open := 0
	for _, m := range matches {
		if m.RoundNumber == cfg.CurrentRound && !m.Status.Settled() {
			open++
		}
	}
	if open > 0 {
		return nil, fmt.Errorf("%w: %d left in round %d", ErrRoundIncomplete, open, cfg.CurrentRound)
	}

	standings, err := refreshStandingsTx(ctx, tx, s.store, cfg)
	if err != nil {
		return nil, err
	}

	totalRounds := bracket.TotalRounds(*cfg, len(standings), matches)
	if cfg.CurrentRound >= totalRounds {
		if err := s.store.UpdateTournamentStateTx(ctx, tx, eventID, cfg.CurrentRound, bracket.TournamentCompleted); err != nil {
			return nil, err
		}
		cfg.Status = bracket.TournamentCompleted
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		s.metrics.IncRoundsAdvanced()
		s.metrics.IncTournamentsCompleted()
		slog.Info("tournament completed", "event_id", eventID, "rounds", cfg.CurrentRound)
		return cfg, nil
	}

	next := cfg.CurrentRound + 1
	if cfg.Format == bracket.Swiss {
		if err := s.pairSwissRoundTx(ctx, tx, cfg, next); err != nil {
			return nil, err
		}
	}
	if err := s.store.UpdateTournamentStateTx(ctx, tx, eventID, next, bracket.TournamentInProgress); err != nil {
		return nil, err
	}
	cfg.CurrentRound = next

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.metrics.IncRoundsAdvanced()
	if cfg.Format == bracket.Swiss {
		s.metrics.ObserveGenerationDuration(time.Since(start).Seconds())
	}
	slog.Info("round advanced", "event_id", eventID, "round", next)
	return cfg, nil
}

func (s *TournamentService) pairSwissRoundTx(ctx context.Context, tx *sqlx.Tx, cfg *bracket.Config, round int) error {
	// Tallies were just refreshed, so the stored rows carry current points
	participants, err := s.store.GetParticipantsTx(ctx, tx, cfg.EventID)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}

	matches := bracket.GenerateSwissRound(cfg.EventID, bracket.SortBySeed(participants), round)
	bracket.AssignIDs(matches, uuid.New)
	if err := s.store.CreateMatches(ctx, tx, matches); err != nil {
		return err
	}
	// A bye in the new round is an immediate win
	_, err = refreshStandingsTx(ctx, tx, s.store, cfg)
	return err
}

// GetTournamentData loads everything needed to render an event.
func (s *TournamentService) GetTournamentData(ctx context.Context, eventID uuid.UUID) (*TournamentData, error) {
	var (
		cfg          *bracket.Config
		participants []bracket.Participant
		matches      []bracket.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cfg, err = s.store.GetConfig(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = s.store.GetParticipants(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.store.GetMatches(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var nextMatchID *uuid.UUID
	for _, m := range matches {
		if !m.Status.Settled() && m.Player1ID != nil && m.Player2ID != nil {
			id := m.ID
			nextMatchID = &id
			break
		}
	}

	return &TournamentData{
		Config:       cfg,
		Participants: participants,
		Matches:      matches,
		Standings:    bracket.ComputeStandings(*cfg, bracket.SortBySeed(participants), matches),
		TotalRounds:  bracket.TotalRounds(*cfg, len(participants), matches),
		NextMatchID:  nextMatchID,
	}, nil
}
