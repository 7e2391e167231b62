package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/service"
	"productivity-service/internal/logging"
	"productivity-service/internal/middleware"
	"productivity-service/pkg/jwt"
	"productivity-service/pkg/jwt/jwttest"
	"productivity-service/pkg/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type activeSessions struct{}

func (activeSessions) IsActive(ctx context.Context, sessionID, userID uuid.UUID) (bool, error) {
	return true, nil
}

type testServer struct {
	handler http.Handler
	userID  uuid.UUID
	token   string
}

type testServices struct {
	tasks     service.TaskService
	reminders service.ReminderService
	pomodoro  service.PomodoroService
	goals     service.GoalService
	habits    service.HabitService
}

func newTestServer(t *testing.T, svc testServices, exposeDetails bool) *testServer {
	t.Helper()

	tm := jwt.NewTokenManager("test-secret", "user-service")
	userID := uuid.New()
	token := jwttest.AccessToken(t, "test-secret", "user-service", userID, uuid.New(), time.Hour)

	if svc.tasks == nil {
		svc.tasks = &stubTaskService{}
	}
	if svc.reminders == nil {
		svc.reminders = newStubReminderService(time.Now)
	}
	if svc.pomodoro == nil {
		svc.pomodoro = &stubPomodoroService{}
	}
	if svc.goals == nil {
		svc.goals = &stubGoalService{}
	}
	if svc.habits == nil {
		svc.habits = &stubHabitService{}
	}

	logger := logging.Nop()
	v := validation.New()
	responder := NewErrorResponder(logger, exposeDetails)

	handlers := Handlers{
		Task:     NewTaskHandler(svc.tasks, v, responder),
		Reminder: NewReminderHandler(svc.reminders, v, responder),
		Pomodoro: NewPomodoroHandler(svc.pomodoro, v, responder),
		Goal:     NewGoalHandler(svc.goals, v, responder),
		Habit:    NewHabitHandler(svc.habits, v, responder),
	}

	auth := middleware.NewAuthMiddleware(tm, activeSessions{}, logger)
	router := NewRouter(handlers, auth, nil, logger)

	return &testServer{handler: router.Setup(), userID: userID, token: token}
}

// do sends an authenticated request and returns the recorded response
func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// stubReminderService keeps reminders in memory and enforces ownership and the past-time rule
type stubReminderService struct {
	service.ReminderService

	mu        sync.Mutex
	now       func() time.Time
	reminders map[uuid.UUID]*entity.Reminder
	err       error
}

func newStubReminderService(now func() time.Time) *stubReminderService {
	return &stubReminderService{now: now, reminders: make(map[uuid.UUID]*entity.Reminder)}
}

func (s *stubReminderService) CreateReminder(ctx context.Context, userID uuid.UUID, input service.CreateReminderInput) (*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if input.TriggerTime.Before(s.now()) {
		return nil, service.ErrReminderInPast
	}
	r := &entity.Reminder{ID: uuid.New(), TaskID: input.TaskID, UserID: userID, TriggerTime: input.TriggerTime, Message: input.Message}
	s.reminders[r.ID] = r
	cp := *r
	return &cp, nil
}

func (s *stubReminderService) GetReminderByID(ctx context.Context, reminderID, userID uuid.UUID) (*entity.Reminder, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reminders[reminderID]
	if !ok || r.UserID != userID {
		return nil, service.ErrReminderNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *stubReminderService) GetRemindersByTaskID(ctx context.Context, taskID, userID uuid.UUID) ([]*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*entity.Reminder{}
	for _, r := range s.reminders {
		if r.TaskID == taskID && r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubReminderService) UpdateReminder(ctx context.Context, reminderID, userID uuid.UUID, patch entity.ReminderPatch) (*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.TriggerTime != nil && patch.TriggerTime.Before(s.now()) {
		return nil, service.ErrReminderInPast
	}
	r, ok := s.reminders[reminderID]
	if !ok || r.UserID != userID {
		return nil, service.ErrReminderNotFound
	}
	if patch.TriggerTime != nil {
		r.TriggerTime = *patch.TriggerTime
	}
	if patch.Message != nil {
		r.Message = patch.Message
	}
	cp := *r
	return &cp, nil
}

func (s *stubReminderService) DeleteReminder(ctx context.Context, reminderID, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reminders[reminderID]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(s.reminders, reminderID)
	return true, nil
}

type stubTaskService struct {
	service.TaskService
	created *entity.Task
	deleted bool
}

func (s *stubTaskService) CreateTask(ctx context.Context, userID uuid.UUID, title string) (*entity.Task, error) {
	s.created = &entity.Task{ID: uuid.New(), UserID: userID, Title: title}
	return s.created, nil
}

func (s *stubTaskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	if s.created == nil {
		return []*entity.Task{}, nil
	}
	return []*entity.Task{s.created}, nil
}

func (s *stubTaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	return s.deleted, nil
}

type stubPomodoroService struct {
	service.PomodoroService
	statsQuery  service.StatisticsQuery
	stats       *entity.PomodoroStatistics
	started     service.StartSessionInput
	completeErr error
	override    *int
}

func (s *stubPomodoroService) GetPomodoroStatistics(ctx context.Context, userID uuid.UUID, query service.StatisticsQuery) (*entity.PomodoroStatistics, error) {
	s.statsQuery = query
	if s.stats == nil {
		return &entity.PomodoroStatistics{DailyStats: []entity.DailyPomodoroStats{}}, nil
	}
	return s.stats, nil
}

func (s *stubPomodoroService) StartSession(ctx context.Context, userID uuid.UUID, input service.StartSessionInput) (*entity.PomodoroSession, error) {
	s.started = input
	return &entity.PomodoroSession{ID: uuid.New(), UserID: userID, Type: input.Type, DurationMinutes: input.DurationMinutes}, nil
}

func (s *stubPomodoroService) CompleteSession(ctx context.Context, sessionID, userID uuid.UUID, durationMinutes *int) (*entity.PomodoroSession, error) {
	s.override = durationMinutes
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	return &entity.PomodoroSession{ID: sessionID, UserID: userID, Completed: true}, nil
}

type stubGoalService struct {
	service.GoalService
	query entity.GoalQuery
	input service.CreateGoalInput
	goals []*entity.Goal
	total int
	err   error
}

func (s *stubGoalService) GetGoals(ctx context.Context, userID uuid.UUID, query entity.GoalQuery) ([]*entity.Goal, int, error) {
	s.query = query
	if s.err != nil {
		return nil, 0, s.err
	}
	if s.goals == nil {
		return []*entity.Goal{}, 0, nil
	}
	return s.goals, s.total, nil
}

func (s *stubGoalService) CreateGoal(ctx context.Context, userID uuid.UUID, input service.CreateGoalInput) (*entity.Goal, error) {
	s.input = input
	return &entity.Goal{ID: uuid.New(), UserID: userID, Title: input.Title, Status: input.Status}, nil
}

type stubHabitService struct {
	service.HabitService
	query entity.HabitQuery
	input service.CreateHabitInput
}

func (s *stubHabitService) GetHabits(ctx context.Context, userID uuid.UUID, query entity.HabitQuery) ([]*entity.Habit, int, error) {
	s.query = query
	return []*entity.Habit{}, 0, nil
}

func (s *stubHabitService) CreateHabit(ctx context.Context, userID uuid.UUID, input service.CreateHabitInput) (*entity.Habit, error) {
	s.input = input
	return &entity.Habit{ID: uuid.New(), UserID: userID, Name: input.Name, Frequency: input.Frequency}, nil
}
