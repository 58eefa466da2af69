package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudfit/interviewd/internal/interviews"
	"github.com/cloudfit/interviewd/internal/metrics"
	"github.com/cloudfit/interviewd/internal/scheduling"
	"github.com/cloudfit/interviewd/internal/timeslot"
	"github.com/cloudfit/interviewd/internal/users"
	"github.com/cloudfit/interviewd/pkg/errors"
)

type createUserRequest struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  users.Role `json:"role"`
}

type slotRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r slotRequest) slot() (timeslot.Slot, error) {
	return timeslot.New(r.Start, r.End)
}

type bookInterviewRequest struct {
	CandidateName string      `json:"candidate_name"`
	Position      string      `json:"position"`
	HRManagerID   int64       `json:"hr_manager_id"`
	InterviewerID int64       `json:"interviewer_id"`
	Slot          slotRequest `json:"slot"`
}

type rescheduleRequest struct {
	Slot slotRequest `json:"slot"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (s *server) handleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "bad payload")
	}

	id, err := s.core.AddUser(req.Name, req.Email, req.Role)
	if err != nil {
		return sendDomainError(c, err)
	}

	user, _ := s.core.GetUser(id)
	return c.Status(http.StatusCreated).JSON(user)
}

func (s *server) handleUsersByRole(c *fiber.Ctx) error {
	role, err := users.ParseRole(c.Query("role"))
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad role query parameter")
	}
	return c.Status(http.StatusOK).JSON(s.core.UsersByRole(role))
}

func (s *server) handleGetUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	user, found := s.core.GetUser(id)
	if !found {
		return sendError(c, http.StatusNotFound, "unknown user")
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (s *server) handleAddAvailability(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	var req slotRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "bad payload")
	}

	slot, err := req.slot()
	if err != nil {
		return sendDomainError(c, err)
	}

	if err := s.core.AddAvailability(id, slot); err != nil {
		return sendDomainError(c, err)
	}

	user, _ := s.core.GetUser(id)
	return c.Status(http.StatusOK).JSON(user)
}

func (s *server) handleUserInterviews(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	if _, found := s.core.GetUser(id); !found {
		return sendError(c, http.StatusNotFound, "unknown user")
	}
	return c.Status(http.StatusOK).JSON(s.core.UserInterviews(id))
}

func (s *server) handleUserHistory(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	if _, found := s.core.GetUser(id); !found {
		return sendError(c, http.StatusNotFound, "unknown user")
	}
	return c.Status(http.StatusOK).JSON(s.core.UserHistory(id))
}

func (s *server) handleBookInterview(c *fiber.Ctx) error {
	var req bookInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "bad payload")
	}

	slot, err := req.Slot.slot()
	if err != nil {
		s.metrics.BookingsTotal.WithLabelValues(metrics.OutcomeInvalidRange).Inc()
		return sendDomainError(c, err)
	}

	id, err := s.core.BookInterview(req.CandidateName, req.Position, req.HRManagerID, req.InterviewerID, slot)
	s.metrics.BookingsTotal.WithLabelValues(metrics.BookingOutcome(err)).Inc()
	if err != nil {
		return sendDomainError(c, err)
	}

	ivw, _ := s.core.GetInterview(id)
	return c.Status(http.StatusCreated).JSON(ivw)
}

func (s *server) handleListInterviews(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(s.core.AllInterviews())
}

func (s *server) handleGetInterview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	ivw, found := s.core.GetInterview(id)
	if !found {
		return sendError(c, http.StatusNotFound, "unknown interview")
	}
	return c.Status(http.StatusOK).JSON(ivw)
}

func (s *server) handleCancelInterview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	if !s.core.CancelInterview(id) {
		return sendError(c, http.StatusNotFound, "nothing to cancel")
	}

	s.metrics.CancellationsTotal.Inc()
	return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
}

func (s *server) handleCompleteInterview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	if err := s.core.CompleteInterview(id); err != nil {
		return sendDomainError(c, err)
	}

	s.metrics.CompletionsTotal.Inc()
	ivw, _ := s.core.GetInterview(id)
	return c.Status(http.StatusOK).JSON(ivw)
}

func (s *server) handleRescheduleInterview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	var req rescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "bad payload")
	}

	slot, err := req.Slot.slot()
	if err != nil {
		return sendDomainError(c, err)
	}

	newID, err := s.core.RescheduleInterview(id, slot)
	if err != nil {
		return sendDomainError(c, err)
	}

	s.metrics.ReschedulesTotal.Inc()
	ivw, _ := s.core.GetInterview(newID)
	return c.Status(http.StatusOK).JSON(ivw)
}

func (s *server) handleUpdateNotes(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "bad id")
	}

	var req notesRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "bad payload")
	}

	if err := s.core.UpdateNotes(id, req.Notes); err != nil {
		return sendDomainError(c, err)
	}

	ivw, _ := s.core.GetInterview(id)
	return c.Status(http.StatusOK).JSON(ivw)
}

func (s *server) handleStats(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(s.core.Stats())
}

func idParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func sendDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, timeslot.ErrInvalidRange),
		errors.Is(err, users.ErrUnknownRole):
		return sendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrUnknownUser),
		errors.Is(err, scheduling.ErrUnknownInterview):
		return sendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduling.ErrWrongRole),
		errors.Is(err, scheduling.ErrOutsideAvailability):
		return sendError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, scheduling.ErrTimeConflict),
		errors.Is(err, interviews.ErrInvalidTransition):
		return sendError(c, http.StatusConflict, err.Error())
	default:
		return err
	}
}
