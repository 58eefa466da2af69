package scheduling

import (
	"github.com/cloudfit/interviewd/internal/interviews"
	"github.com/cloudfit/interviewd/internal/users"
)

// Stats is a point-in-time count of registry contents.
type Stats struct {
	TotalUsers   int `json:"total_users"`
	HRManagers   int `json:"hr_managers"`
	Interviewers int `json:"interviewers"`

	TotalInterviews int `json:"total_interviews"`
	Scheduled       int `json:"scheduled"`
	Completed       int `json:"completed"`
	Cancelled       int `json:"cancelled"`
	Rescheduled     int `json:"rescheduled"`
}

func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Stats{
		TotalUsers:      len(r.users),
		TotalInterviews: len(r.interviews),
	}

	for _, u := range r.users {
		switch u.Role {
		case users.RoleHRManager:
			s.HRManagers++
		case users.RoleInterviewer:
			s.Interviewers++
		}
	}

	for _, ivw := range r.interviews {
		switch ivw.Status {
		case interviews.StatusScheduled:
			s.Scheduled++
		case interviews.StatusCompleted:
			s.Completed++
		case interviews.StatusCancelled:
			s.Cancelled++
		case interviews.StatusRescheduled:
			s.Rescheduled++
		}
	}

	return s
}
