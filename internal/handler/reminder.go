package handler

import (
	"context"
	"net/http"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/service"
	"productivity-service/internal/middleware"
	"productivity-service/pkg/validation"

	"github.com/google/uuid"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderService service.ReminderService
	validator       *validation.Validator
	errors          *ErrorResponder
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService service.ReminderService, validator *validation.Validator, responder *ErrorResponder) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		validator:       validator,
		errors:          responder,
	}
}

type createReminderRequest struct {
	TaskID      string  `json:"taskId" validate:"required,uuid"`
	TriggerTime string  `json:"triggerTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Message     *string `json:"message" validate:"omitempty,max=500"`
}

type updateReminderRequest struct {
	TriggerTime *string `json:"triggerTime" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Message     *string `json:"message" validate:"omitempty,max=500"`
}

// CreateReminder handles reminder creation
// @Summary Create a reminder
// @Description Schedule a reminder on one of the user's tasks
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createReminderRequest true "Create reminder request"
// @Success 201 {object} object{reminder=entity.Reminder}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/reminders [post]
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var req createReminderRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	taskID, _ := uuid.Parse(req.TaskID)
	triggerTime, _ := time.Parse(time.RFC3339, req.TriggerTime)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reminder, err := h.reminderService.CreateReminder(ctx, userID, service.CreateReminderInput{
		TaskID:      taskID,
		TriggerTime: triggerTime,
		Message:     req.Message,
	})
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"reminder": reminder,
	})
}

// GetReminder retrieves a single reminder by ID
// @Summary Get reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} object{reminder=entity.Reminder}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/reminders/{id} [get]
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	reminderID, ok := pathID(r, "id")
	if !ok {
		h.errors.writeServiceError(w, r, service.ErrReminderNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reminder, err := h.reminderService.GetReminderByID(ctx, reminderID, userID)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reminder": reminder,
	})
}

// UpdateReminder applies a partial update to a reminder
// @Summary Update reminder
// @Description Change trigger time and/or message. A trigger time in the past is rejected.
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body updateReminderRequest true "Update reminder request"
// @Success 200 {object} object{reminder=entity.Reminder}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	reminderID, ok := pathID(r, "id")
	if !ok {
		h.errors.writeServiceError(w, r, service.ErrReminderNotFound)
		return
	}

	var req updateReminderRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	patch := entity.ReminderPatch{Message: req.Message}
	if req.TriggerTime != nil {
		triggerTime, _ := time.Parse(time.RFC3339, *req.TriggerTime)
		patch.TriggerTime = &triggerTime
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reminder, err := h.reminderService.UpdateReminder(ctx, reminderID, userID, patch)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reminder": reminder,
	})
}

// DeleteReminder removes a reminder
// @Summary Delete reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} object{success=bool}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	reminderID, ok := pathID(r, "id")
	if !ok {
		h.errors.writeServiceError(w, r, service.ErrReminderNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := h.reminderService.DeleteReminder(ctx, reminderID, userID)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}
	if !deleted {
		h.errors.writeServiceError(w, r, service.ErrReminderNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// ListTaskReminders lists the reminders of a task
// @Summary List reminders of a task
// @Description Reminders ordered by trigger time ascending
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Success 200 {object} object{reminders=[]entity.Reminder}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/reminders/task/{taskId} [get]
func (h *ReminderHandler) ListTaskReminders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	taskID, ok := pathID(r, "taskId")
	if !ok {
		h.errors.writeServiceError(w, r, validation.NewError("taskId", "must be a valid UUID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reminders, err := h.reminderService.GetRemindersByTaskID(ctx, taskID, userID)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reminders": reminders,
	})
}
