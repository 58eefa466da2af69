package scheduling

import (
	"fmt"

	"github.com/cloudfit/interviewd/internal/timeslot"
	"github.com/cloudfit/interviewd/internal/users"
	"github.com/cloudfit/interviewd/pkg/errors"
)

// Booking failures are tagged: callers match the violated rule with
// errors.Is and pull details out of the typed wrappers with errors.As.
var (
	ErrUnknownUser         = errors.Error("unknown user")
	ErrUnknownInterview    = errors.Error("unknown interview")
	ErrWrongRole           = errors.Error("user role does not fit")
	ErrOutsideAvailability = errors.Error("slot is outside declared availability")
	ErrTimeConflict        = errors.Error("slot conflicts with a scheduled interview")
)

type UnknownUserError struct {
	UserID int64
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("user %d does not exist", e.UserID)
}

func (e *UnknownUserError) Unwrap() error { return ErrUnknownUser }

type WrongRoleError struct {
	UserID int64
	Want   users.Role
	Got    users.Role
}

func (e *WrongRoleError) Error() string {
	return fmt.Sprintf("user %d has role %s, want %s", e.UserID, e.Got, e.Want)
}

func (e *WrongRoleError) Unwrap() error { return ErrWrongRole }

// AvailabilityError names the party whose availability does not cover
// the requested slot.
type AvailabilityError struct {
	UserID int64
	Role   users.Role
	Slot   timeslot.Slot
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("user %d (%s) is not available at %s", e.UserID, e.Role, e.Slot)
}

func (e *AvailabilityError) Unwrap() error { return ErrOutsideAvailability }

// ConflictError names the already scheduled interview that overlaps
// the requested slot.
type ConflictError struct {
	UserID      int64
	InterviewID int64
	Slot        timeslot.Slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("user %d already has interview %d at %s", e.UserID, e.InterviewID, e.Slot)
}

func (e *ConflictError) Unwrap() error { return ErrTimeConflict }
