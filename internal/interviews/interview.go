package interviews

import (
	"github.com/cloudfit/interviewd/internal/timeslot"
)

// Interview is a booking between exactly one HR manager and one
// interviewer. Participant ids are weak references resolved through
// the registry; an interview is never deleted once created.
type Interview struct {
	ID            int64         `json:"id"`
	CandidateName string        `json:"candidate_name"`
	Position      string        `json:"position"`
	HRManagerID   int64         `json:"hr_manager_id"`
	InterviewerID int64         `json:"interviewer_id"`
	Slot          timeslot.Slot `json:"slot"`
	Status        Status        `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

// Participants returns both referenced user ids, HR manager first.
func (i *Interview) Participants() [2]int64 {
	return [2]int64{i.HRManagerID, i.InterviewerID}
}

// References reports whether the interview names the user in either role.
func (i *Interview) References(userID int64) bool {
	return i.HRManagerID == userID || i.InterviewerID == userID
}

// Transition moves the interview to next if the status machine allows it.
func (i *Interview) Transition(next Status) error {
	if !i.Status.CanTransitionTo(next) {
		return &TransitionError{ID: i.ID, From: i.Status, To: next}
	}
	i.Status = next
	return nil
}

// SetStatus overwrites the status with no state machine checks.
// Registry operations are the only validated entry points.
func (i *Interview) SetStatus(s Status) {
	i.Status = s
}

func (i *Interview) SetNotes(notes string) {
	i.Notes = notes
}

// SetSlot overwrites the slot without re-running conflict or
// availability checks. Must not be used to bypass booking validation.
func (i *Interview) SetSlot(slot timeslot.Slot) {
	i.Slot = slot
}
