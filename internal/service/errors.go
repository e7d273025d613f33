package service

import (
	"errors"

	"github.com/gametaverns/tournament-engine/internal/bracket"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrRoundIncomplete      = errors.New("current round still has undecided matches")
	ErrTournamentInProgress = errors.New("tournament is in progress")
	ErrTournamentNotStarted = errors.New("tournament has not started")
	ErrTournamentCompleted  = errors.New("tournament is already completed")
	ErrConflict             = errors.New("match was changed by another request, reload and retry")
)

func isStateError(err error) bool {
	for _, target := range []error{
		ErrConflict,
		ErrTournamentNotStarted,
		ErrTournamentCompleted,
		bracket.ErrMatchNotReady,
		bracket.ErrInvalidTransition,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err was caused by the caller's input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		bracket.ErrInvalidConfig,
		bracket.ErrInsufficientParticipants,
		bracket.ErrFormatNotSupported,
		bracket.ErrInvalidResult,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
