package bracket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSwissRound_FirstRound(t *testing.T) {
	players := makeParticipants(5)
	matches := GenerateSwissRound(testEventID, players, 1)

	require.Len(t, matches, 3)
	assert.Equal(t, players[0].ID, *matches[0].Player1ID)
	assert.Equal(t, players[1].ID, *matches[0].Player2ID)
	assert.Equal(t, players[2].ID, *matches[1].Player1ID)
	assert.Equal(t, players[3].ID, *matches[1].Player2ID)

	bye := matches[2]
	assert.Equal(t, MatchBye, bye.Status)
	assert.Equal(t, players[4].ID, *bye.Player1ID)
	assert.Nil(t, bye.Player2ID)
	assert.Equal(t, players[4].ID, *bye.WinnerID)

	for i, m := range matches {
		assert.Equal(t, 1, m.RoundNumber)
		assert.Equal(t, i+1, m.MatchNumber)
	}
}

func TestGenerateSwissRound_PairsByRecord(t *testing.T) {
	players := makeParticipants(5)
	players[2].Points = 6
	players[0].Points = 3
	players[3].Points = 3
	players[3].TiebreakerScore = 4.5

	matches := GenerateSwissRound(testEventID, players, 3)

	require.Len(t, matches, 3)
	assert.Equal(t, players[2].ID, *matches[0].Player1ID)
	assert.Equal(t, players[3].ID, *matches[0].Player2ID)
	assert.Equal(t, players[0].ID, *matches[1].Player1ID)
	assert.Equal(t, players[1].ID, *matches[1].Player2ID)
	assert.Equal(t, players[4].ID, *matches[2].WinnerID)
	for _, m := range matches {
		assert.Equal(t, 3, m.RoundNumber)
	}
}

func TestGenerateSwissRound_NoDoubleBooking(t *testing.T) {
	for n := 2; n <= 15; n++ {
		matches := GenerateSwissRound(testEventID, makeParticipants(n), 1)
		require.Len(t, matches, (n+1)/2)

		seen := map[uuid.UUID]bool{}
		byes := 0
		for _, m := range matches {
			if m.Status == MatchBye {
				byes++
			}
			for _, id := range []*uuid.UUID{m.Player1ID, m.Player2ID} {
				if id == nil {
					continue
				}
				assert.False(t, seen[*id], "n=%d", n)
				seen[*id] = true
			}
		}
		assert.Len(t, seen, n)
		assert.Equal(t, n%2, byes)
	}
}

func TestRankForSwiss_DoesNotMutateInput(t *testing.T) {
	players := makeParticipants(3)
	players[2].Points = 9

	ranked := RankForSwiss(players)

	assert.Equal(t, players[2].ID, ranked[0].ID)
	assert.Equal(t, 1, *players[0].Seed)
	assert.Equal(t, 0, players[0].Points)
}
