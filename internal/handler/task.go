package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"productivity-service/internal/domain/service"
	"productivity-service/internal/middleware"
	"productivity-service/pkg/validation"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	validator   *validation.Validator
	errors      *ErrorResponder
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskService, validator *validation.Validator, responder *ErrorResponder) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator,
		errors:      responder,
	}
}

type createTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// CreateTask handles task creation
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createTaskRequest true "Create task request"
// @Success 201 {object} object{task=entity.Task}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var req createTaskRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	task, err := h.taskService.CreateTask(ctx, userID, req.Title)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"task": task,
	})
}

// ListTasks lists the user's tasks, newest first
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{tasks=[]entity.Task}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tasks, err := h.taskService.ListTasks(ctx, userID)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks": tasks,
	})
}

// DeleteTask removes a task with its reminders
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} object{success=bool}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	taskID, ok := pathID(r, "id")
	if !ok {
		h.errors.writeServiceError(w, r, service.ErrTaskNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := h.taskService.DeleteTask(ctx, taskID, userID)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}
	if !deleted {
		h.errors.writeServiceError(w, r, service.ErrTaskNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
