package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gametaverns/tournament-engine/internal/bracket"
	"github.com/google/uuid"
)

// renderPreview generates the opening matches for participants and writes
// them grouped by round. Slots still waiting on an earlier result print as TBD.
func renderPreview(w io.Writer, cfg bracket.Config, participants []bracket.Participant) error {
	if len(participants) < 2 {
		return fmt.Errorf("%w: roster has %d", bracket.ErrInsufficientParticipants, len(participants))
	}

	matches, err := bracket.Generate(cfg, participants)
	if err != nil {
		return err
	}
	bracket.AssignIDs(matches, uuid.New)
	bracket.LinkAdvancement(matches)
	bracket.AdvanceByes(matches)

	names := make(map[uuid.UUID]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}
	name := func(id *uuid.UUID) string {
		if id == nil {
			return "TBD"
		}
		return names[*id]
	}

	fmt.Fprintf(w, "%s, %d players, %d rounds\n", cfg.Format, len(participants),
		bracket.TotalRounds(cfg, len(participants), matches))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	round := 0
	for _, m := range matches {
		if m.RoundNumber != round {
			round = m.RoundNumber
			fmt.Fprintf(tw, "\nRound %d\n", round)
		}
		if m.Status == bracket.MatchBye {
			fmt.Fprintf(tw, "  #%d\t%s\tbye\n", m.MatchNumber, name(m.Player1ID))
			continue
		}
		fmt.Fprintf(tw, "  #%d\t%s\tvs %s\n", m.MatchNumber, name(m.Player1ID), name(m.Player2ID))
	}
	return tw.Flush()
}
