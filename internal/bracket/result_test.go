package bracket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestApplyResult(t *testing.T) {
	players := makeParticipants(3)
	ready := func() Match {
		return Match{
			ID:        uuid.New(),
			EventID:   testEventID,
			Player1ID: idOf(players[0]),
			Player2ID: idOf(players[1]),
			Status:    MatchPending,
		}
	}

	testCases := []struct {
		name       string
		match      func() Match
		result     Result
		format     Format
		wantErr    error
		wantStatus MatchStatus
		wantWinner *uuid.UUID
	}{
		{
			name:       "winner completes the match",
			match:      ready,
			result:     Result{WinnerID: idOf(players[1]), Player1Score: intPtr(1), Player2Score: intPtr(2)},
			format:     SingleElimination,
			wantStatus: MatchCompleted,
			wantWinner: idOf(players[1]),
		},
		{
			name:       "draw in round robin",
			match:      ready,
			result:     Result{Draw: true, Player1Score: intPtr(2), Player2Score: intPtr(2)},
			format:     RoundRobin,
			wantStatus: MatchCompleted,
		},
		{
			name:       "scores only leave it in progress",
			match:      ready,
			result:     Result{Player1Score: intPtr(1), Player2Score: intPtr(0)},
			format:     Swiss,
			wantStatus: MatchInProgress,
		},
		{
			name: "in progress to completed",
			match: func() Match {
				m := ready()
				m.Status = MatchInProgress
				return m
			},
			result:     Result{WinnerID: idOf(players[0])},
			format:     Swiss,
			wantStatus: MatchCompleted,
			wantWinner: idOf(players[0]),
		},
		{
			name: "completed is final",
			match: func() Match {
				m := ready()
				m.Status = MatchCompleted
				m.WinnerID = idOf(players[0])
				return m
			},
			result:  Result{WinnerID: idOf(players[1])},
			format:  RoundRobin,
			wantErr: ErrInvalidTransition,
		},
		{
			name: "bye is final",
			match: func() Match {
				m := ready()
				m.Player2ID = nil
				m.markBye()
				return m
			},
			result:  Result{WinnerID: idOf(players[0])},
			format:  SingleElimination,
			wantErr: ErrInvalidTransition,
		},
		{
			name: "empty slot",
			match: func() Match {
				m := ready()
				m.Player2ID = nil
				return m
			},
			result:  Result{WinnerID: idOf(players[0])},
			format:  SingleElimination,
			wantErr: ErrMatchNotReady,
		},
		{
			name:    "winner and draw together",
			match:   ready,
			result:  Result{WinnerID: idOf(players[0]), Draw: true},
			format:  RoundRobin,
			wantErr: ErrInvalidResult,
		},
		{
			name:    "winner from outside the match",
			match:   ready,
			result:  Result{WinnerID: idOf(players[2])},
			format:  RoundRobin,
			wantErr: ErrInvalidResult,
		},
		{
			name:    "draw in elimination",
			match:   ready,
			result:  Result{Draw: true},
			format:  SingleElimination,
			wantErr: ErrInvalidResult,
		},
		{
			name:    "negative score",
			match:   ready,
			result:  Result{WinnerID: idOf(players[0]), Player1Score: intPtr(-1)},
			format:  RoundRobin,
			wantErr: ErrInvalidResult,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.match()
			before := m

			err := m.ApplyResult(tc.result, tc.format)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, before, m, "a rejected result must not touch the match")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, m.Status)
			assert.Equal(t, tc.wantWinner, m.WinnerID)
			assert.Equal(t, tc.result.Player1Score, m.Player1Score)
			assert.Equal(t, tc.result.Player2Score, m.Player2Score)
		})
	}
}
