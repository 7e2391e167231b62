package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
	_ "time/tzdata"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/service"
	"productivity-service/internal/middleware"
	"productivity-service/pkg/validation"

	"github.com/google/uuid"
)

// PomodoroHandler handles pomodoro sessions and statistics
type PomodoroHandler struct {
	pomodoroService service.PomodoroService
	validator       *validation.Validator
	errors          *ErrorResponder
}

// NewPomodoroHandler creates a new pomodoro handler
func NewPomodoroHandler(pomodoroService service.PomodoroService, validator *validation.Validator, responder *ErrorResponder) *PomodoroHandler {
	return &PomodoroHandler{
		pomodoroService: pomodoroService,
		validator:       validator,
		errors:          responder,
	}
}

type statisticsQuery struct {
	TaskID   string `query:"taskId" validate:"omitempty,uuid"`
	Timezone string `query:"timezone" validate:"omitempty,timezone"`
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

type startSessionRequest struct {
	TaskID          *string `json:"taskId" validate:"omitempty,uuid"`
	Type            string  `json:"type" validate:"omitempty,oneof=work short_break long_break"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=1,max=240"`
	StartedAt       *string `json:"startedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type completeSessionRequest struct {
	DurationMinutes *int `json:"durationMinutes" validate:"omitnil,min=1,max=240"`
}

// GetStatistics handles pomodoro statistics
// @Summary Pomodoro statistics
// @Description Aggregate completed sessions, bucketed by local day of completion
// @Tags pomodoro
// @Produce json
// @Security BearerAuth
// @Param taskId query string false "Restrict to one task"
// @Param timezone query string false "IANA timezone for day bucketing (default UTC)"
// @Param from query string false "First local date, inclusive (YYYY-MM-DD)"
// @Param to query string false "Last local date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} object{statistics=entity.PomodoroStatistics}
// @Failure 400 {object} object{error=string,details=[]validation.Issue}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/pomodoro/statistics [get]
func (h *PomodoroHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var q statisticsQuery
	if err := bindQuery(r.URL.Query(), &q); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}
	if err := h.validator.Struct(q); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	query := service.StatisticsQuery{
		Timezone: q.Timezone,
		From:     parseDate(q.From),
		To:       parseDate(q.To),
	}
	if q.TaskID != "" {
		taskID, _ := uuid.Parse(q.TaskID)
		query.TaskID = &taskID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.pomodoroService.GetPomodoroStatistics(ctx, userID, query)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"statistics": stats,
	})
}

// StartSession handles session start
// @Summary Start a pomodoro session
// @Tags pomodoro
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body startSessionRequest true "Start session request"
// @Success 201 {object} object{session=entity.PomodoroSession}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/pomodoro/sessions [post]
func (h *PomodoroHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var req startSessionRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	input := service.StartSessionInput{
		Type:            entity.SessionType(req.Type),
		DurationMinutes: req.DurationMinutes,
	}
	if req.TaskID != nil {
		taskID, _ := uuid.Parse(*req.TaskID)
		input.TaskID = &taskID
	}
	if req.StartedAt != nil {
		startedAt, _ := time.Parse(time.RFC3339, *req.StartedAt)
		input.StartedAt = &startedAt
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := h.pomodoroService.StartSession(ctx, userID, input)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session": session,
	})
}

// CompleteSession marks a running session as completed
// @Summary Complete a pomodoro session
// @Tags pomodoro
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body completeSessionRequest false "Actual duration override"
// @Success 200 {object} object{session=entity.PomodoroSession}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/pomodoro/sessions/{id}/complete [post]
func (h *PomodoroHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	sessionID, ok := pathID(r, "id")
	if !ok {
		h.errors.writeServiceError(w, r, service.ErrSessionNotFound)
		return
	}

	// The body is optional
	var req completeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := h.pomodoroService.CompleteSession(ctx, sessionID, userID, req.DurationMinutes)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
	})
}
