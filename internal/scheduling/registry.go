package scheduling

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cloudfit/interviewd/internal/interviews"
	"github.com/cloudfit/interviewd/internal/timeslot"
	"github.com/cloudfit/interviewd/internal/users"
	"github.com/cloudfit/interviewd/pkg/errors"
)

// Registry owns every user and interview and is the only validated
// mutation path. One RWMutex covers all state: the booking pipeline
// must observe a consistent snapshot, so mutations exclude each other
// and reads only run concurrently with reads.
//
// Id sequences belong to the registry instance; independent registries
// issue independent ids, both starting at 1.
type Registry struct {
	mu sync.RWMutex

	users      map[int64]*users.User
	interviews map[int64]*interviews.Interview

	// history keeps every interview id that ever referenced a user,
	// in creation order. Cancelled and superseded bookings leave the
	// user's booked set but stay discoverable here.
	history map[int64][]int64

	nextUserID      int64
	nextInterviewID int64
}

func NewRegistry() *Registry {
	return &Registry{
		users:           make(map[int64]*users.User),
		interviews:      make(map[int64]*interviews.Interview),
		history:         make(map[int64][]int64),
		nextUserID:      1,
		nextInterviewID: 1,
	}
}

// AddUser registers a user and returns the assigned id. It fails only
// when the role constant is not one of the known roles.
func (r *Registry) AddUser(name, email string, role users.Role) (int64, error) {
	if !role.Valid() {
		return 0, errors.Wrapf(users.ErrUnknownRole, "role %d", role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextUserID
	r.nextUserID++

	r.users[id] = &users.User{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}

	return id, nil
}

// AddAvailability appends a window to the user's availability. Windows
// are never merged or deduplicated, and existing bookings are not
// re-checked against the new shape.
func (r *Registry) AddAvailability(userID int64, slot timeslot.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return &UnknownUserError{UserID: userID}
	}

	u.AddAvailability(slot)
	return nil
}

// BookInterview validates and creates a booking. Checks run in a fixed
// order and the first failure wins: participant ids resolve, the HR
// manager and the interviewer carry their expected roles, both are
// available for the slot, and neither has a scheduled interview
// overlapping it. On failure the registry is left untouched.
func (r *Registry) BookInterview(candidateName, position string, hrManagerID, interviewerID int64, slot timeslot.Slot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hr, interviewer, err := r.resolveParticipants(hrManagerID, interviewerID)
	if err != nil {
		return 0, err
	}

	err = r.validateSlot(hr, interviewer, slot, 0)
	if err != nil {
		return 0, err
	}

	id := r.nextInterviewID
	r.nextInterviewID++

	r.link(&interviews.Interview{
		ID:            id,
		CandidateName: candidateName,
		Position:      position,
		HRManagerID:   hrManagerID,
		InterviewerID: interviewerID,
		Slot:          slot,
		Status:        interviews.StatusScheduled,
	})

	return id, nil
}

// CancelInterview reports true when the interview ends up cancelled:
// it cancels a scheduled one and is idempotent for an already
// cancelled one. Unknown ids and interviews that completed or were
// superseded return false. It never returns an error.
func (r *Registry) CancelInterview(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ivw, ok := r.interviews[id]
	if !ok {
		return false
	}

	switch ivw.Status {
	case interviews.StatusCancelled:
		return true
	case interviews.StatusScheduled:
	default:
		return false
	}

	ivw.SetStatus(interviews.StatusCancelled)
	r.unlink(ivw)
	return true
}

// CompleteInterview marks a scheduled interview as held. The booking
// stays linked to both participants, it just stops competing for
// their time.
func (r *Registry) CompleteInterview(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ivw, ok := r.interviews[id]
	if !ok {
		return errors.Wrapf(ErrUnknownInterview, "interview %d", id)
	}

	return ivw.Transition(interviews.StatusCompleted)
}

// RescheduleInterview moves a scheduled booking to a new slot by
// superseding it: the full booking validation re-runs for the original
// participants against newSlot (with the old booking excluded from the
// conflict scan), the old interview becomes RESCHEDULED and keeps its
// original slot for the record, and a fresh SCHEDULED interview takes
// its place. Returns the replacement id. On failure nothing changes.
func (r *Registry) RescheduleInterview(id int64, newSlot timeslot.Slot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.interviews[id]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownInterview, "interview %d", id)
	}

	if !old.Status.CanTransitionTo(interviews.StatusRescheduled) {
		return 0, &interviews.TransitionError{ID: id, From: old.Status, To: interviews.StatusRescheduled}
	}

	hr, interviewer, err := r.resolveParticipants(old.HRManagerID, old.InterviewerID)
	if err != nil {
		return 0, err
	}

	err = r.validateSlot(hr, interviewer, newSlot, old.ID)
	if err != nil {
		return 0, err
	}

	newID := r.nextInterviewID
	r.nextInterviewID++

	old.SetStatus(interviews.StatusRescheduled)
	r.unlink(old)

	r.link(&interviews.Interview{
		ID:            newID,
		CandidateName: old.CandidateName,
		Position:      old.Position,
		HRManagerID:   old.HRManagerID,
		InterviewerID: old.InterviewerID,
		Slot:          newSlot,
		Status:        interviews.StatusScheduled,
		Notes:         old.Notes,
	})

	return newID, nil
}

// UpdateNotes attaches free-form notes to an interview of any status.
func (r *Registry) UpdateNotes(id int64, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ivw, ok := r.interviews[id]
	if !ok {
		return errors.Wrapf(ErrUnknownInterview, "interview %d", id)
	}

	ivw.SetNotes(notes)
	return nil
}

func (r *Registry) GetUser(id int64) (users.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return users.User{}, false
	}
	return u.Clone(), true
}

func (r *Registry) GetInterview(id int64) (interviews.Interview, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ivw, ok := r.interviews[id]
	if !ok {
		return interviews.Interview{}, false
	}
	return *ivw, true
}

// UserInterviews returns the interviews currently linked to the user,
// ascending by id. Cancelled and superseded bookings have left the
// booked set and do not show up here; see UserHistory for those.
// Unknown users get an empty result.
func (r *Registry) UserInterviews(userID int64) []interviews.Interview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil
	}

	res := make([]interviews.Interview, 0, len(u.Booked))
	for _, id := range u.Booked {
		if ivw, ok := r.interviews[id]; ok {
			res = append(res, *ivw)
		}
	}
	return res
}

// UserHistory returns every interview that ever referenced the user,
// in creation order, whatever its status is now.
func (r *Registry) UserHistory(userID int64) []interviews.Interview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.history[userID]
	res := make([]interviews.Interview, 0, len(ids))
	for _, id := range ids {
		if ivw, ok := r.interviews[id]; ok {
			res = append(res, *ivw)
		}
	}
	return res
}

func (r *Registry) AllInterviews() []interviews.Interview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]interviews.Interview, 0, len(r.interviews))
	for _, ivw := range r.interviews {
		res = append(res, *ivw)
	}

	slices.SortFunc(res, func(a, b interviews.Interview) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return res
}

func (r *Registry) UsersByRole(role users.Role) []users.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]users.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			res = append(res, u.Clone())
		}
	}

	slices.SortFunc(res, func(a, b users.User) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return res
}

func (r *Registry) resolveParticipants(hrManagerID, interviewerID int64) (*users.User, *users.User, error) {
	hr, ok := r.users[hrManagerID]
	if !ok {
		return nil, nil, &UnknownUserError{UserID: hrManagerID}
	}

	interviewer, ok := r.users[interviewerID]
	if !ok {
		return nil, nil, &UnknownUserError{UserID: interviewerID}
	}

	if hr.Role != users.RoleHRManager {
		return nil, nil, &WrongRoleError{UserID: hrManagerID, Want: users.RoleHRManager, Got: hr.Role}
	}

	if interviewer.Role != users.RoleInterviewer {
		return nil, nil, &WrongRoleError{UserID: interviewerID, Want: users.RoleInterviewer, Got: interviewer.Role}
	}

	return hr, interviewer, nil
}

// validateSlot checks availability containment for both participants,
// then scans each participant's own bookings for an overlapping
// scheduled interview. excludeID skips one booking in the scan so a
// reschedule does not collide with the interview it replaces.
func (r *Registry) validateSlot(hr, interviewer *users.User, slot timeslot.Slot, excludeID int64) error {
	for _, u := range [...]*users.User{hr, interviewer} {
		if !u.IsAvailable(slot) {
			return &AvailabilityError{UserID: u.ID, Role: u.Role, Slot: slot}
		}
	}

	for _, u := range [...]*users.User{hr, interviewer} {
		if conflict := r.findConflict(u, slot, excludeID); conflict != nil {
			return &ConflictError{UserID: u.ID, InterviewID: conflict.ID, Slot: conflict.Slot}
		}
	}

	return nil
}

// findConflict scans only the user's own booked set, never the full
// interview table. Cost is linear in the user's booking count.
func (r *Registry) findConflict(u *users.User, slot timeslot.Slot, excludeID int64) *interviews.Interview {
	for _, id := range u.Booked {
		if id == excludeID {
			continue
		}

		ivw, ok := r.interviews[id]
		if !ok || !ivw.Status.Active() {
			continue
		}

		if ivw.Slot.Overlaps(slot) {
			return ivw
		}
	}
	return nil
}

func (r *Registry) link(ivw *interviews.Interview) {
	r.interviews[ivw.ID] = ivw
	for _, uid := range ivw.Participants() {
		r.users[uid].AddBooking(ivw.ID)
		r.history[uid] = append(r.history[uid], ivw.ID)
	}
}

// unlink tolerates participants missing from the user table.
func (r *Registry) unlink(ivw *interviews.Interview) {
	for _, uid := range ivw.Participants() {
		if u, ok := r.users[uid]; ok {
			u.RemoveBooking(ivw.ID)
		}
	}
}
