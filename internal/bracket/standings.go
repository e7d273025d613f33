package bracket

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

type Standing struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	Name          string    `json:"player_name"`
	Rank          int       `json:"rank"`

	Played int `json:"played"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
	Byes   int `json:"byes"`
	Points int `json:"points"`

	ScoreFor     int     `json:"score_for"`
	ScoreAgainst int     `json:"score_against"`
	Tiebreaker   float64 `json:"tiebreaker_score"`
	Eliminated   bool    `json:"is_eliminated"`
}

// ComputeStandings rebuilds every participant's record from the match history.
//
// Byes count as wins. Draws give both sides the draw points. In elimination
// formats the loser of a completed match is flagged eliminated. Rows are
// ordered by points, tiebreaker and wins, all descending, with the input order
// of participants deciding whatever is left.
func ComputeStandings(cfg Config, participants []Participant, matches []Match) []Standing {
	rows := make([]Standing, len(participants))
	index := make(map[uuid.UUID]int, len(participants))
	for i, p := range participants {
		rows[i] = Standing{ParticipantID: p.ID, Name: p.Name}
		index[p.ID] = i
	}
	lookup := func(id *uuid.UUID) *Standing {
		if id == nil {
			return nil
		}
		if i, ok := index[*id]; ok {
			return &rows[i]
		}
		return nil
	}

	opponents := make(map[uuid.UUID][]uuid.UUID, len(participants))

	for _, m := range matches {
		switch m.Status {
		case MatchBye:
			if s := lookup(m.WinnerID); s != nil {
				s.Wins++
				s.Byes++
				s.Points += cfg.PointsWin
			}

		case MatchCompleted:
			p1, p2 := lookup(m.Player1ID), lookup(m.Player2ID)
			if p1 == nil || p2 == nil {
				continue
			}
			p1.Played++
			p2.Played++
			opponents[p1.ParticipantID] = append(opponents[p1.ParticipantID], p2.ParticipantID)
			opponents[p2.ParticipantID] = append(opponents[p2.ParticipantID], p1.ParticipantID)

			if m.Player1Score != nil {
				p1.ScoreFor += *m.Player1Score
				p2.ScoreAgainst += *m.Player1Score
			}
			if m.Player2Score != nil {
				p2.ScoreFor += *m.Player2Score
				p1.ScoreAgainst += *m.Player2Score
			}

			if m.WinnerID == nil {
				p1.Draws++
				p2.Draws++
				p1.Points += cfg.PointsDraw
				p2.Points += cfg.PointsDraw
				continue
			}

			winner, loser := lookup(m.WinnerID), lookup(m.Loser())
			if winner == nil || loser == nil {
				continue
			}
			winner.Wins++
			winner.Points += cfg.PointsWin
			loser.Losses++
			loser.Points += cfg.PointsLoss
			if cfg.Format.IsElimination() {
				loser.Eliminated = true
			}
		}
	}

	for i := range rows {
		s := &rows[i]
		switch cfg.Tiebreaker {
		case TiebreakBuchholz:
			total := 0
			for _, opp := range opponents[s.ParticipantID] {
				total += rows[index[opp]].Points
			}
			s.Tiebreaker = float64(total)
		case TiebreakScoreDifferential:
			s.Tiebreaker = float64(s.ScoreFor - s.ScoreAgainst)
		}
	}

	slices.SortStableFunc(rows, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Tiebreaker, a.Tiebreaker); c != 0 {
			return c
		}
		return cmp.Compare(b.Wins, a.Wins)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// ApplyStandings copies computed tallies onto the matching participants.
func ApplyStandings(participants []Participant, standings []Standing) []Participant {
	byID := make(map[uuid.UUID]Standing, len(standings))
	for _, s := range standings {
		byID[s.ParticipantID] = s
	}

	updated := slices.Clone(participants)
	for i := range updated {
		s, ok := byID[updated[i].ID]
		if !ok {
			continue
		}
		updated[i].Wins = s.Wins
		updated[i].Losses = s.Losses
		updated[i].Draws = s.Draws
		updated[i].Points = s.Points
		updated[i].TiebreakerScore = s.Tiebreaker
		updated[i].IsEliminated = s.Eliminated
	}
	return updated
}
