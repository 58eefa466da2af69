package api

import (
	"context"

	"github.com/cloudfit/interviewd/internal/interviews"
	"github.com/cloudfit/interviewd/internal/scheduling"
	"github.com/cloudfit/interviewd/internal/timeslot"
	"github.com/cloudfit/interviewd/internal/users"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// scheduler is the registry surface the HTTP layer uses, narrowed so
// tests can mock it.
type scheduler interface {
	AddUser(name, email string, role users.Role) (int64, error)
	AddAvailability(userID int64, slot timeslot.Slot) error

	BookInterview(candidateName, position string, hrManagerID, interviewerID int64, slot timeslot.Slot) (int64, error)
	CancelInterview(id int64) bool
	CompleteInterview(id int64) error
	RescheduleInterview(id int64, newSlot timeslot.Slot) (int64, error)
	UpdateNotes(id int64, notes string) error

	GetUser(id int64) (users.User, bool)
	GetInterview(id int64) (interviews.Interview, bool)
	UserInterviews(userID int64) []interviews.Interview
	UserHistory(userID int64) []interviews.Interview
	AllInterviews() []interviews.Interview
	UsersByRole(role users.Role) []users.User
	Stats() scheduling.Stats
}
