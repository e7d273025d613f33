package bracket

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketSize(t *testing.T) {
	testCases := []struct {
		count    int
		expected int
	}{
		{count: 0, expected: 0},
		{count: 1, expected: 1},
		{count: 2, expected: 2},
		{count: 3, expected: 4},
		{count: 5, expected: 8},
		{count: 8, expected: 8},
		{count: 9, expected: 16},
		{count: 33, expected: 64},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, BracketSize(tc.count), "count %d", tc.count)
	}
}

func TestRound1Pairs(t *testing.T) {
	testCases := []struct {
		name        string
		bracketSize int
		method      SeedMethod
		expected    [][2]int
	}{
		{
			name:        "standard 2",
			bracketSize: 2,
			method:      SeedStandard,
			expected:    [][2]int{{0, 1}},
		},
		{
			name:        "standard 8",
			bracketSize: 8,
			method:      SeedStandard,
			expected:    [][2]int{{0, 7}, {1, 6}, {2, 5}, {3, 4}},
		},
		{
			name:        "balanced 4",
			bracketSize: 4,
			method:      SeedBalanced,
			expected:    [][2]int{{0, 3}, {1, 2}},
		},
		{
			name:        "balanced 8",
			bracketSize: 8,
			method:      SeedBalanced,
			expected:    [][2]int{{0, 7}, {3, 4}, {1, 6}, {2, 5}},
		},
		{
			name:        "empty bracket",
			bracketSize: 0,
			method:      SeedStandard,
			expected:    [][2]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, round1Pairs(tc.bracketSize, tc.method))
		})
	}
}

func TestGenerateSingleElimination_MatchCount(t *testing.T) {
	for n := 2; n <= 33; n++ {
		for _, method := range []SeedMethod{SeedStandard, SeedBalanced} {
			matches := GenerateSingleElimination(testEventID, makeParticipants(n), method)
			size := BracketSize(n)

			require.Len(t, matches, size-1, "n=%d method=%s", n, method)
			assert.Len(t, matchesInRound(matches, 1), size/2)
			assert.Len(t, matchesInRound(matches, EliminationRounds(n)), 1, "one final")

			byes := 0
			for _, m := range matchesInRound(matches, 1) {
				if m.Status == MatchBye {
					byes++
				}
			}
			assert.Equal(t, size-n, byes, "n=%d method=%s", n, method)
		}
	}
}

func TestGenerateSingleElimination_FivePlayers(t *testing.T) {
	players := makeParticipants(5)
	matches := GenerateSingleElimination(testEventID, players, SeedStandard)

	require.Len(t, matches, 7)
	round1 := matchesInRound(matches, 1)
	require.Len(t, round1, 4)

	// Seeds 1-3 face empty slots 8, 7 and 6
	for i := 0; i < 3; i++ {
		m := round1[i]
		assert.Equal(t, i+1, m.MatchNumber)
		assert.Equal(t, MatchBye, m.Status)
		require.NotNil(t, m.Player1ID)
		assert.Nil(t, m.Player2ID)
		assert.Equal(t, players[i].ID, *m.Player1ID)
		require.NotNil(t, m.WinnerID)
		assert.Equal(t, *m.Player1ID, *m.WinnerID)
	}

	contested := round1[3]
	assert.Equal(t, MatchPending, contested.Status)
	assert.Equal(t, players[3].ID, *contested.Player1ID)
	assert.Equal(t, players[4].ID, *contested.Player2ID)
	assert.Nil(t, contested.WinnerID)

	for _, m := range matches[4:] {
		assert.Equal(t, MatchPending, m.Status)
		assert.Nil(t, m.Player1ID)
		assert.Nil(t, m.Player2ID)
		assert.Equal(t, PositionWinners, m.BracketPosition)
	}
	assert.Len(t, matchesInRound(matches, 2), 2)
	assert.Len(t, matchesInRound(matches, 3), 1)
}

func TestGenerateSingleElimination_TooFewPlayers(t *testing.T) {
	assert.Empty(t, GenerateSingleElimination(testEventID, nil, SeedStandard))
	assert.Empty(t, GenerateSingleElimination(testEventID, makeParticipants(1), SeedStandard))
}

func TestGenerateSingleElimination_ContiguousNumbers(t *testing.T) {
	matches := GenerateSingleElimination(testEventID, makeParticipants(11), SeedBalanced)

	for round := 1; round <= EliminationRounds(11); round++ {
		inRound := matchesInRound(matches, round)
		for i, m := range inRound {
			assert.Equal(t, i+1, m.MatchNumber, "round %d", round)
		}
	}
}

func TestGenerateSingleElimination_Deterministic(t *testing.T) {
	players := makeParticipants(13)
	first := GenerateSingleElimination(testEventID, players, SeedStandard)
	second := GenerateSingleElimination(testEventID, players, SeedStandard)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("generation is not deterministic (-first +second):\n%s", diff)
	}
}
