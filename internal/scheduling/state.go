package scheduling

import (
	"cmp"
	"slices"

	"github.com/cloudfit/interviewd/internal/interviews"
	"github.com/cloudfit/interviewd/internal/users"
	"github.com/cloudfit/interviewd/pkg/errors"
)

var ErrBadState = errors.Error("inconsistent registry state")

// State is the serializable snapshot of a registry. The per-user
// history index is not part of it; imports rebuild it from the
// interviews.
type State struct {
	Users      []users.User           `json:"users"`
	Interviews []interviews.Interview `json:"interviews"`

	NextUserID      int64 `json:"next_user_id"`
	NextInterviewID int64 `json:"next_interview_id"`
}

// ExportState deep-copies the registry contents, ascending by id.
func (r *Registry) ExportState() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := State{
		Users:           make([]users.User, 0, len(r.users)),
		Interviews:      make([]interviews.Interview, 0, len(r.interviews)),
		NextUserID:      r.nextUserID,
		NextInterviewID: r.nextInterviewID,
	}

	for _, u := range r.users {
		s.Users = append(s.Users, u.Clone())
	}
	slices.SortFunc(s.Users, func(a, b users.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for _, ivw := range r.interviews {
		s.Interviews = append(s.Interviews, *ivw)
	}
	slices.SortFunc(s.Interviews, func(a, b interviews.Interview) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return s
}

// ImportState replaces the registry contents with the snapshot. The
// snapshot must be internally consistent: unique positive ids, known
// roles, interview participants that exist, and id counters ahead of
// every issued id, so restored registries never reuse ids.
func (r *Registry) ImportState(s State) error {
	newUsers := make(map[int64]*users.User, len(s.Users))
	for i := range s.Users {
		u := s.Users[i].Clone()

		if u.ID < 1 {
			return errors.Wrapf(ErrBadState, "user id %d", u.ID)
		}
		if !u.Role.Valid() {
			return errors.Wrapf(ErrBadState, "user %d has unknown role", u.ID)
		}
		if _, dup := newUsers[u.ID]; dup {
			return errors.Wrapf(ErrBadState, "duplicate user id %d", u.ID)
		}
		if u.ID >= s.NextUserID {
			return errors.Wrapf(ErrBadState, "user counter %d behind issued id %d", s.NextUserID, u.ID)
		}

		newUsers[u.ID] = &u
	}

	newInterviews := make(map[int64]*interviews.Interview, len(s.Interviews))
	for i := range s.Interviews {
		ivw := s.Interviews[i]

		if ivw.ID < 1 {
			return errors.Wrapf(ErrBadState, "interview id %d", ivw.ID)
		}
		if _, dup := newInterviews[ivw.ID]; dup {
			return errors.Wrapf(ErrBadState, "duplicate interview id %d", ivw.ID)
		}
		if ivw.ID >= s.NextInterviewID {
			return errors.Wrapf(ErrBadState, "interview counter %d behind issued id %d", s.NextInterviewID, ivw.ID)
		}

		for _, uid := range ivw.Participants() {
			if _, ok := newUsers[uid]; !ok {
				return errors.Wrapf(ErrBadState, "interview %d references missing user %d", ivw.ID, uid)
			}
		}

		newInterviews[ivw.ID] = &ivw
	}

	// Rebuild history in creation order, which is ascending id order.
	ids := make([]int64, 0, len(newInterviews))
	for id := range newInterviews {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	newHistory := make(map[int64][]int64)
	for _, id := range ids {
		for _, uid := range newInterviews[id].Participants() {
			newHistory[uid] = append(newHistory[uid], id)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = newUsers
	r.interviews = newInterviews
	r.history = newHistory
	r.nextUserID = max(s.NextUserID, 1)
	r.nextInterviewID = max(s.NextInterviewID, 1)

	return nil
}
