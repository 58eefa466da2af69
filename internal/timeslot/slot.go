package timeslot

import (
	"fmt"
	"time"

	"github.com/cloudfit/interviewd/pkg/errors"
)

// ErrInvalidRange reports a degenerate or inverted interval.
var ErrInvalidRange = errors.Error("invalid time range")

// Slot is a half-open interval [Start, End).
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// New fails with ErrInvalidRange unless start is strictly before end.
func New(start, end time.Time) (Slot, error) {
	if !start.Before(end) {
		return Slot{}, errors.Wrapf(ErrInvalidRange, "start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Slot{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
// Touching endpoints do not overlap; a slot always overlaps itself.
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}

// Contains reports whether other lies fully within s.
func (s Slot) Contains(other Slot) bool {
	return !other.Start.Before(s.Start) && !other.End.After(s.End)
}

func (s Slot) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
}
