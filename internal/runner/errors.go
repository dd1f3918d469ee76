package runner

import (
	"errors"
	"fmt"
)

// FailureCategory classifies turn-fatal failures surfaced to the caller.
type FailureCategory string

const (
	// TransportFailure covers timeouts and connection-level errors.
	TransportFailure FailureCategory = "transport"
	// ProtocolFailure covers non-2xx statuses, unparsable bodies, and
	// responses missing required fields.
	ProtocolFailure FailureCategory = "protocol"
)

// ErrTurnInFlight is returned when a turn is started while another request
// for the same conversation is still pending.
var ErrTurnInFlight = errors.New("runner: a turn is already in flight for this conversation")

// TurnError is a turn-fatal failure. When it is returned, the conversation
// history is exactly as it was before the failed turn began.
type TurnError struct {
	Category FailureCategory
	Kind     string // send, bad_status, bad_body, missing_field
	Status   int    // HTTP status for bad_status, zero otherwise
	Err      error
}

func (e *TurnError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("runner: %s failure (%s): %v", e.Category, e.Kind, e.Err)
	}
	return fmt.Sprintf("runner: %s failure (%s)", e.Category, e.Kind)
}

func (e *TurnError) Unwrap() error { return e.Err }
