package bracket

import (
	"cmp"
	"slices"
)

// SortBySeed returns participants in bracket order: seeded players by ascending
// seed, then unseeded players, each group falling back to roster position.
func SortBySeed(participants []Participant) []Participant {
	sorted := slices.Clone(participants)
	slices.SortStableFunc(sorted, func(a, b Participant) int {
		switch {
		case a.Seed != nil && b.Seed == nil:
			return -1
		case a.Seed == nil && b.Seed != nil:
			return 1
		case a.Seed != nil && b.Seed != nil:
			if c := cmp.Compare(*a.Seed, *b.Seed); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Position, b.Position)
	})
	return sorted
}
