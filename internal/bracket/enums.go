package bracket

import (
	"database/sql/driver"
	"fmt"
)

type Format string

const (
	SingleElimination Format = "single_elimination"
	DoubleElimination Format = "double_elimination"
	RoundRobin        Format = "round_robin"
	Swiss             Format = "swiss"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case SingleElimination, DoubleElimination, RoundRobin, Swiss:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, s)
}

// IsElimination reports whether losing a match knocks a participant out.
func (f Format) IsElimination() bool {
	return f == SingleElimination || f == DoubleElimination
}

func (f Format) Value() (driver.Value, error) { return string(f), nil }

func (f *Format) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return err
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

type MatchStatus string

const (
	MatchPending    MatchStatus = "pending"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchBye        MatchStatus = "bye"
)

func ParseMatchStatus(s string) (MatchStatus, error) {
	switch st := MatchStatus(s); st {
	case MatchPending, MatchInProgress, MatchCompleted, MatchBye:
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// Settled reports whether the match needs no further result.
func (s MatchStatus) Settled() bool {
	return s == MatchCompleted || s == MatchBye
}

func (s MatchStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *MatchStatus) Scan(src any) error {
	text, err := scanText(src)
	if err != nil {
		return err
	}
	parsed, err := ParseMatchStatus(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// BracketPosition tags which side of a bracket a match belongs to. Formats
// without sides leave it as PositionNone, stored as NULL.
type BracketPosition string

const (
	PositionNone    BracketPosition = ""
	PositionWinners BracketPosition = "winners"
	PositionLosers  BracketPosition = "losers"
	PositionFinals  BracketPosition = "finals"
)

func (p BracketPosition) Value() (driver.Value, error) {
	if p == PositionNone {
		return nil, nil
	}
	return string(p), nil
}

func (p *BracketPosition) Scan(src any) error {
	if src == nil {
		*p = PositionNone
		return nil
	}
	text, err := scanText(src)
	if err != nil {
		return err
	}
	switch pos := BracketPosition(text); pos {
	case PositionNone, PositionWinners, PositionLosers, PositionFinals:
		*p = pos
		return nil
	}
	return fmt.Errorf("unknown bracket position %q", text)
}

type TournamentStatus string

const (
	TournamentSetup      TournamentStatus = "setup"
	TournamentInProgress TournamentStatus = "in_progress"
	TournamentCompleted  TournamentStatus = "completed"
)

func (s TournamentStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *TournamentStatus) Scan(src any) error {
	text, err := scanText(src)
	if err != nil {
		return err
	}
	switch st := TournamentStatus(text); st {
	case TournamentSetup, TournamentInProgress, TournamentCompleted:
		*s = st
		return nil
	}
	return fmt.Errorf("unknown tournament status %q", text)
}

// SeedMethod selects how round 1 of an elimination bracket is paired.
type SeedMethod string

const (
	// SeedStandard pairs seed i against seed size-1-i in bracket order.
	SeedStandard SeedMethod = "standard"
	// SeedBalanced folds the seed list recursively so the top seeds meet last.
	SeedBalanced SeedMethod = "balanced"
)

func ParseSeedMethod(s string) (SeedMethod, error) {
	switch m := SeedMethod(s); m {
	case SeedStandard, SeedBalanced:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown seed method %q", ErrInvalidConfig, s)
}

func (m SeedMethod) Value() (driver.Value, error) { return string(m), nil }

func (m *SeedMethod) Scan(src any) error {
	text, err := scanText(src)
	if err != nil {
		return err
	}
	parsed, err := ParseSeedMethod(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

type Tiebreaker string

const (
	TiebreakBuchholz          Tiebreaker = "buchholz"
	TiebreakScoreDifferential Tiebreaker = "score_differential"
	TiebreakNone              Tiebreaker = "none"
)

func ParseTiebreaker(s string) (Tiebreaker, error) {
	switch t := Tiebreaker(s); t {
	case TiebreakBuchholz, TiebreakScoreDifferential, TiebreakNone:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown tiebreaker %q", ErrInvalidConfig, s)
}

func (t Tiebreaker) Value() (driver.Value, error) { return string(t), nil }

func (t *Tiebreaker) Scan(src any) error {
	text, err := scanText(src)
	if err != nil {
		return err
	}
	parsed, err := ParseTiebreaker(text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func scanText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("unexpected NULL value")
	}
	return "", fmt.Errorf("unsupported scan type %T", src)
}
