package interviews

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/cloudfit/interviewd/pkg/errors"
)

var ErrInvalidTransition = errors.Error("invalid status transition")

type Status int

const (
	// StatusScheduled is set when the interview is booked.
	StatusScheduled = Status(iota)

	// StatusCompleted is set when the interview took place.
	StatusCompleted

	// StatusCancelled is set when the booking was called off.
	StatusCancelled

	// StatusRescheduled is set when the booking was superseded
	// by one with a new slot.
	StatusRescheduled
)

// transitions lists the allowed moves; terminal statuses map to none.
var transitions = map[Status][]Status{
	StatusScheduled:   {StatusCompleted, StatusCancelled, StatusRescheduled},
	StatusCompleted:   {},
	StatusCancelled:   {},
	StatusRescheduled: {},
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Active reports whether the status takes part in conflict detection.
func (s Status) Active() bool {
	return s == StatusScheduled
}

func ParseStatus(raw string) (Status, error) {
	switch raw {
	case "SCHEDULED":
		return StatusScheduled, nil
	case "COMPLETED":
		return StatusCompleted, nil
	case "CANCELLED":
		return StatusCancelled, nil
	case "RESCHEDULED":
		return StatusRescheduled, nil
	default:
		return StatusScheduled, errors.Failf("parse status %q", raw)
	}
}

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "SCHEDULED"
	case StatusCompleted:
		return "COMPLETED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusRescheduled:
		return "RESCHEDULED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// TransitionError reports a move the status machine forbids.
type TransitionError struct {
	ID   int64
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("interview %d cannot go from %s to %s", e.ID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
