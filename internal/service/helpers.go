package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// loadConfigTx returns the stored configuration, or the defaults with
// found=false when the event has none yet.
func loadConfigTx(ctx context.Context, tx *sqlx.Tx, st *store.TournamentStore, eventID uuid.UUID) (cfg *bracket.Config, found bool, err error) {
	cfg, err = st.GetConfigTx(ctx, tx, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		def := bracket.DefaultConfig(eventID)
		return &def, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get tournament config: %w", err)
	}
	return cfg, true, nil
}

// refreshStandingsTx recomputes every participant's tallies from the full
// match history and writes them back.
func refreshStandingsTx(ctx context.Context, tx *sqlx.Tx, st *store.TournamentStore, cfg *bracket.Config) ([]bracket.Standing, error) {
	participants, err := st.GetParticipantsTx(ctx, tx, cfg.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	matches, err := st.GetMatchesTx(ctx, tx, cfg.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	standings := bracket.ComputeStandings(*cfg, bracket.SortBySeed(participants), matches)
	if err := st.UpdateTalliesTx(ctx, tx, bracket.ApplyStandings(participants, standings)); err != nil {
		return nil, fmt.Errorf("failed to update standings: %w", err)
	}
	return standings, nil
}

func checkVersion(m *bracket.Match, expected *int) error {
	if expected != nil && *expected != m.Version {
		return fmt.Errorf("%w: match %s is at version %d", ErrConflict, m.ID, m.Version)
	}
	return nil
}

func updateMatch(ctx context.Context, tx *sqlx.Tx, st *store.TournamentStore, m *bracket.Match) error {
	err := st.UpdateMatch(ctx, tx, m)
	if errors.Is(err, store.ErrStaleVersion) {
		return fmt.Errorf("%w: match %s", ErrConflict, m.ID)
	}
	return err
}
