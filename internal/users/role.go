package users

import (
	"encoding/json"

	"github.com/cloudfit/interviewd/pkg/errors"
)

var ErrUnknownRole = errors.Error("unknown role")

type Role int

const (
	RoleUnknown Role = iota
	RoleHRManager
	RoleInterviewer
)

func ParseRole(s string) (Role, error) {
	switch s {
	case "HR_MANAGER":
		return RoleHRManager, nil
	case "INTERVIEWER":
		return RoleInterviewer, nil
	default:
		return RoleUnknown, errors.Wrapf(ErrUnknownRole, "%q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleHRManager || r == RoleInterviewer
}

func (r Role) String() string {
	switch r {
	case RoleHRManager:
		return "HR_MANAGER"
	case RoleInterviewer:
		return "INTERVIEWER"
	default:
		return "UNKNOWN"
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}
