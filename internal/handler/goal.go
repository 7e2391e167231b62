package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/service"
	"productivity-service/internal/middleware"
	"productivity-service/pkg/validation"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService service.GoalService
	validator   *validation.Validator
	errors      *ErrorResponder
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalService, validator *validation.Validator, responder *ErrorResponder) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		validator:   validator,
		errors:      responder,
	}
}

type listGoalsQuery struct {
	Status     string `query:"status" validate:"omitempty,oneof=not_started in_progress completed abandoned"`
	Category   string `query:"category" validate:"omitempty,max=100"`
	Search     string `query:"search" validate:"omitempty,max=200"`
	TargetFrom string `query:"targetFrom" validate:"omitempty,datetime=2006-01-02"`
	TargetTo   string `query:"targetTo" validate:"omitempty,datetime=2006-01-02"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt targetDate title progress"`
	SortOrder  string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page       *int   `query:"page" validate:"omitnil,min=1"`
	Limit      *int   `query:"limit" validate:"omitnil,min=1,max=100"`
}

type createGoalRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Status      string  `json:"status" validate:"omitempty,oneof=not_started in_progress completed abandoned"`
	Progress    *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	TargetDate  *string `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

// ListGoals handles goal listing
// @Summary List goals
// @Description Filter, sort and paginate the current user's goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Goal status" Enums(not_started, in_progress, completed, abandoned)
// @Param category query string false "Category"
// @Param search query string false "Case-insensitive title search"
// @Param targetFrom query string false "Target date lower bound (YYYY-MM-DD)"
// @Param targetTo query string false "Target date upper bound (YYYY-MM-DD)"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, targetDate, title, progress)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} object{goals=[]entity.Goal,total=int,page=int,limit=int}
// @Failure 400 {object} object{error=string,details=[]validation.Issue}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/goals [get]
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var q listGoalsQuery
	if err := bindQuery(r.URL.Query(), &q); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}
	if err := h.validator.Struct(q); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	query := entity.GoalQuery{
		Category:   optionalString(q.Category),
		Search:     optionalString(q.Search),
		TargetFrom: parseDate(q.TargetFrom),
		TargetTo:   parseDate(q.TargetTo),
		SortBy:     q.SortBy,
		SortOrder:  entity.SortOrder(q.SortOrder),
		Page:       entity.Page{Number: intOrZero(q.Page), Limit: intOrZero(q.Limit)}.Normalize(),
	}
	if q.Status != "" {
		status := entity.GoalStatus(q.Status)
		query.Status = &status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	goals, total, err := h.goalService.GetGoals(ctx, userID, query)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"goals": goals,
		"total": total,
		"page":  query.Page.Number,
		"limit": query.Page.Limit,
	})
}

// CreateGoal handles goal creation
// @Summary Create a new goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createGoalRequest true "Create goal request"
// @Success 201 {object} object{goal=entity.Goal}
// @Failure 400 {object} object{error=string,details=[]validation.Issue}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/goals [post]
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var req createGoalRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	input := service.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      entity.GoalStatus(req.Status),
		Progress:    intOrZero(req.Progress),
	}
	if req.TargetDate != nil {
		input.TargetDate = parseDate(*req.TargetDate)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	goal, err := h.goalService.CreateGoal(ctx, userID, input)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"goal": goal,
	})
}
