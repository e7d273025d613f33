package bracket

import "errors"

var (
	ErrInsufficientParticipants = errors.New("at least two participants are required")
	ErrFormatNotSupported       = errors.New("bracket format is not supported by the generator")
	ErrInvalidConfig            = errors.New("invalid tournament configuration")

	ErrInvalidResult     = errors.New("invalid match result")
	ErrMatchNotReady     = errors.New("match does not have both participants yet")
	ErrInvalidTransition = errors.New("match status transition not allowed")
)
