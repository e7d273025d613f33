package bracket

import (
	"math"

	"github.com/google/uuid"
)

// Gets the nearest power of 2 while rounding up, so with input 5 it returns 8 and so on
func BracketSize(count int) int {
	if count <= 0 {
		return 0
	}

	// Log2 -> Ceil -> 2^^log2 to round up
	log2 := math.Ceil(math.Log2(float64(count)))
	return int(math.Pow(2, log2))
}

// EliminationRounds is the number of rounds needed to reduce count players to one.
func EliminationRounds(count int) int {
	size := BracketSize(count)
	if size < 2 {
		return 0
	}
	return int(math.Log2(float64(size)))
}

// round1Pairs returns slot index pairs for the first round of a bracket of
// the given size. Indexes >= the participant count are empty slots.
func round1Pairs(bracketSize int, method SeedMethod) [][2]int {
	if bracketSize < 2 {
		return [][2]int{}
	}
	if method == SeedBalanced {
		return balancedPairs(bracketSize)
	}

	pairs := make([][2]int, 0, bracketSize/2)
	for i := 0; i < bracketSize/2; i++ {
		pairs = append(pairs, [2]int{i, bracketSize - 1 - i})
	}
	return pairs
}

// balancedPairs folds the seed list one level at a time: every seed s in a
// bracket of n is followed by its mirror n-1-s. Adjacent pairs then feed the
// same next-round match, so seeds 1 and 2 can only meet in the final.
func balancedPairs(bracketSize int) [][2]int {
	rounds := []int{0}
	for len(rounds) < bracketSize {
		var nextRound []int
		currentCount := len(rounds) * 2

		for _, seed := range rounds {
			nextRound = append(nextRound, seed)
			nextRound = append(nextRound, (currentCount-1)-seed)
		}
		rounds = nextRound
	}

	pairs := make([][2]int, 0, bracketSize/2)
	for i := 0; i < len(rounds); i += 2 {
		pairs = append(pairs, [2]int{rounds[i], rounds[i+1]})
	}
	return pairs
}

// GenerateSingleElimination lays out every match of a single-elimination
// bracket. participants must already be in seed order, top seed first.
//
// Round 1 is fully populated; empty slots turn into byes won by the present
// participant. Later rounds are empty pending stubs that get filled as winners
// advance. Fewer than two participants produce no matches.
func GenerateSingleElimination(eventID uuid.UUID, participants []Participant, method SeedMethod) []Match {
	n := len(participants)
	if n < 2 {
		return nil
	}

	bracketSize := BracketSize(n)
	totalRounds := EliminationRounds(n)
	matches := make([]Match, 0, bracketSize-1)

	for i, pair := range round1Pairs(bracketSize, method) {
		m := Match{
			EventID:         eventID,
			RoundNumber:     1,
			MatchNumber:     i + 1,
			BracketPosition: PositionWinners,
			Status:          MatchPending,
		}
		if pair[0] < n {
			id := participants[pair[0]].ID
			m.Player1ID = &id
		}
		if pair[1] < n {
			id := participants[pair[1]].ID
			m.Player2ID = &id
		}
		m.markBye()
		matches = append(matches, m)
	}

	for r := 2; r <= totalRounds; r++ {
		matchesInRound := bracketSize >> r
		for i := 0; i < matchesInRound; i++ {
			matches = append(matches, Match{
				EventID:         eventID,
				RoundNumber:     r,
				MatchNumber:     i + 1,
				BracketPosition: PositionWinners,
				Status:          MatchPending,
			})
		}
	}

	return matches
}
