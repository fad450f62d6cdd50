package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrChatterNotFound = fmt.Errorf("chatter not found")
	ErrGroupNotFound   = fmt.Errorf("group not found")
	ErrValidation      = fmt.Errorf("validation failed")
	ErrMediumClosed    = fmt.Errorf("broadcast medium closed")
	ErrReaderClosed    = fmt.Errorf("medium reader closed")
	ErrInvalidPayload  = fmt.Errorf("invalid event payload")
	ErrEmptyWatchlist  = fmt.Errorf("watchlist contains no terms")
)

// Status codes reported at the boundary. They mirror the historical wire
// contract: callers branch on these numbers, so they must not change.
const (
	StatusOK              = 0
	StatusNotFound        = -1
	StatusChatterNotFound = -2
)

// Code maps an operation error to its boundary status. Operations that
// distinguish a missing chatter from a missing group (adding a member,
// sending a message) pass dual=true and report StatusChatterNotFound for
// the chatter case; every other failure reports StatusNotFound.
func Code(err error, dual bool) int {
	switch {
	case err == nil:
		return StatusOK
	case dual && stderrors.Is(err, ErrChatterNotFound):
		return StatusChatterNotFound
	default:
		return StatusNotFound
	}
}
