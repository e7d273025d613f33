package service

import (
	"context"
	"testing"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/gametaverns/tournament-engine/internal/metrics"
	"github.com/gametaverns/tournament-engine/internal/store"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	// Every pooled connection would get its own empty in-memory database
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

type fixture struct {
	ctx          context.Context
	store        *store.TournamentStore
	tournaments  *TournamentService
	participants *ParticipantService
	matches      *MatchService
	metrics      *metrics.Mock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })

	tournamentStore := store.NewTournamentStore(db)
	mock := metrics.NewMock()
	return &fixture{
		ctx:          context.Background(),
		store:        tournamentStore,
		tournaments:  NewTournamentService(db, tournamentStore, mock),
		participants: NewParticipantService(db, tournamentStore),
		matches:      NewMatchService(db, tournamentStore, mock),
		metrics:      mock,
	}
}

// event creates an event with the given format and roster, in roster order.
func (f *fixture) event(t *testing.T, format bracket.Format, names ...string) (uuid.UUID, []bracket.Participant) {
	t.Helper()
	eventID := uuid.New()

	_, err := f.tournaments.SaveConfig(f.ctx, eventID, ConfigInput{Format: string(format)})
	require.NoError(t, err)

	roster := make([]bracket.Participant, 0, len(names))
	for _, name := range names {
		p, err := f.participants.AddParticipant(f.ctx, eventID, ParticipantInput{Name: name})
		require.NoError(t, err)
		roster = append(roster, *p)
	}
	return eventID, roster
}

func (f *fixture) win(t *testing.T, m bracket.Match, winner bracket.Participant) *bracket.Match {
	t.Helper()
	id := winner.ID
	updated, err := f.matches.RecordResult(f.ctx, m.ID, ResultInput{Result: bracket.Result{WinnerID: &id}})
	require.NoError(t, err)
	return updated
}

func (f *fixture) participant(t *testing.T, eventID, id uuid.UUID) bracket.Participant {
	t.Helper()
	participants, err := f.store.GetParticipants(f.ctx, eventID)
	require.NoError(t, err)
	for _, p := range participants {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("participant %s not found", id)
	return bracket.Participant{}
}

func findMatch(matches []bracket.Match, round, number int) bracket.Match {
	for _, m := range matches {
		if m.RoundNumber == round && m.MatchNumber == number {
			return m
		}
	}
	return bracket.Match{}
}
