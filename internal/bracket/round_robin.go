package bracket

import "github.com/google/uuid"

// GenerateRoundRobin builds the complete schedule with the circle method.
//
// An odd roster gets an extra empty slot; whoever is paired with it that round
// receives a bye. Slot 0 stays fixed while the others rotate one position per
// round. Match numbers run across the whole schedule rather than per round.
func GenerateRoundRobin(eventID uuid.UUID, participants []Participant) []Match {
	if len(participants) < 2 {
		return nil
	}

	slots := make([]*uuid.UUID, 0, len(participants)+1)
	for i := range participants {
		id := participants[i].ID
		slots = append(slots, &id)
	}
	if len(slots)%2 != 0 {
		slots = append(slots, nil)
	}

	size := len(slots)
	matches := make([]Match, 0, (size-1)*size/2)
	matchNumber := 0

	for round := 1; round < size; round++ {
		for i := 0; i < size/2; i++ {
			matchNumber++
			m := Match{
				EventID:     eventID,
				RoundNumber: round,
				MatchNumber: matchNumber,
				Player1ID:   copyID(slots[i]),
				Player2ID:   copyID(slots[size-1-i]),
				Status:      MatchPending,
			}
			m.markBye()
			matches = append(matches, m)
		}
		slots = rotate(slots)
	}

	return matches
}

// rotate keeps index 0 in place, moves index 1 to the end and shifts the rest down.
func rotate(slots []*uuid.UUID) []*uuid.UUID {
	if len(slots) < 3 {
		return slots
	}
	rotated := make([]*uuid.UUID, 0, len(slots))
	rotated = append(rotated, slots[0])
	rotated = append(rotated, slots[2:]...)
	rotated = append(rotated, slots[1])
	return rotated
}
