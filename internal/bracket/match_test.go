package bracket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMatchLoser(t *testing.T) {
	ps := makeParticipants(2)
	a, b := idOf(ps[0]), idOf(ps[1])

	tests := []struct {
		name   string
		match  Match
		wantID *uuid.UUID
	}{
		{
			name:   "slot 1 wins",
			match:  Match{Player1ID: a, Player2ID: b, WinnerID: a, Status: MatchCompleted},
			wantID: b,
		},
		{
			name:   "slot 2 wins",
			match:  Match{Player1ID: a, Player2ID: b, WinnerID: b, Status: MatchCompleted},
			wantID: a,
		},
		{
			name:  "draw",
			match: Match{Player1ID: a, Player2ID: b, Status: MatchCompleted},
		},
		{
			name:  "bye",
			match: Match{Player1ID: a, WinnerID: a, Status: MatchBye},
		},
		{
			name:  "still in progress",
			match: Match{Player1ID: a, Player2ID: b, Status: MatchInProgress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantID, tt.match.Loser())
		})
	}
}

func TestMatchOpponent(t *testing.T) {
	ps := makeParticipants(3)
	a, b := idOf(ps[0]), idOf(ps[1])
	m := Match{Player1ID: a, Player2ID: b}

	assert.Equal(t, b, m.Opponent(ps[0].ID))
	assert.Equal(t, a, m.Opponent(ps[1].ID))
	assert.Nil(t, m.Opponent(ps[2].ID))
	assert.True(t, m.HasParticipant(ps[1].ID))
	assert.False(t, m.HasParticipant(ps[2].ID))
}
