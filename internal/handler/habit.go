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

// HabitHandler handles habit-related HTTP requests
type HabitHandler struct {
	habitService service.HabitService
	validator    *validation.Validator
	errors       *ErrorResponder
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habitService service.HabitService, validator *validation.Validator, responder *ErrorResponder) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
		validator:    validator,
		errors:       responder,
	}
}

type listHabitsQuery struct {
	Frequency string `query:"frequency" validate:"omitempty,oneof=daily weekly monthly"`
	IsActive  *bool  `query:"isActive"`
	Search    string `query:"search" validate:"omitempty,max=200"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt name"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page      *int   `query:"page" validate:"omitnil,min=1"`
	Limit     *int   `query:"limit" validate:"omitnil,min=1,max=100"`
}

type createHabitRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Color       *string `json:"color" validate:"omitempty,hexcolor,max=7"`
	Frequency   string  `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	TargetCount *int    `json:"targetCount" validate:"omitnil,min=1,max=1000"`
	IsActive    *bool   `json:"isActive"`
}

// ListHabits handles habit listing
// @Summary List habits
// @Description Filter, sort and paginate the current user's habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param frequency query string false "Frequency" Enums(daily, weekly, monthly)
// @Param isActive query boolean false "Only active or inactive habits"
// @Param search query string false "Case-insensitive name search"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, name)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} object{habits=[]entity.Habit,total=int,page=int,limit=int}
// @Failure 400 {object} object{error=string,details=[]validation.Issue}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/habits [get]
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var q listHabitsQuery
	if err := bindQuery(r.URL.Query(), &q); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}
	if err := h.validator.Struct(q); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	query := entity.HabitQuery{
		IsActive:  q.IsActive,
		Search:    optionalString(q.Search),
		SortBy:    q.SortBy,
		SortOrder: entity.SortOrder(q.SortOrder),
		Page:      entity.Page{Number: intOrZero(q.Page), Limit: intOrZero(q.Limit)}.Normalize(),
	}
	if q.Frequency != "" {
		frequency := entity.Frequency(q.Frequency)
		query.Frequency = &frequency
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	habits, total, err := h.habitService.GetHabits(ctx, userID, query)
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"habits": habits,
		"total":  total,
		"page":   query.Page.Number,
		"limit":  query.Page.Limit,
	})
}

// CreateHabit handles habit creation
// @Summary Create a new habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createHabitRequest true "Create habit request"
// @Success 201 {object} object{habit=entity.Habit}
// @Failure 400 {object} object{error=string,details=[]validation.Issue}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/habits [post]
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	var req createHabitRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.validator.Struct(req); err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	habit, err := h.habitService.CreateHabit(ctx, userID, service.CreateHabitInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Frequency:   entity.Frequency(req.Frequency),
		TargetCount: intOrZero(req.TargetCount),
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.errors.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"habit": habit,
	})
}
