package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"

	"github.com/google/uuid"
)

var errStore = errors.New("connection refused")

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*entity.Task
	err   error
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[uuid.UUID]*entity.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTaskRepo) ExistsForUser(_ context.Context, taskID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	t, ok := r.tasks[taskID]
	return ok && t.UserID == userID, nil
}

func (r *memTaskRepo) Delete(_ context.Context, taskID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(r.tasks, taskID)
	return true, nil
}

func (r *memTaskRepo) add(userID uuid.UUID) uuid.UUID {
	id := uuid.New()
	r.tasks[id] = &entity.Task{ID: id, UserID: userID, Title: "task"}
	return id
}

type memReminderRepo struct {
	mu        sync.Mutex
	reminders map[uuid.UUID]*entity.Reminder
	err       error
	updates   int
}

func newMemReminderRepo() *memReminderRepo {
	return &memReminderRepo{reminders: make(map[uuid.UUID]*entity.Reminder)}
}

func (r *memReminderRepo) Create(_ context.Context, reminder *entity.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *reminder
	r.reminders[reminder.ID] = &cp
	return nil
}

func (r *memReminderRepo) GetByIDAndUserID(_ context.Context, reminderID, userID uuid.UUID) (*entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	rem, ok := r.reminders[reminderID]
	if !ok || rem.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *rem
	return &cp, nil
}

func (r *memReminderRepo) GetByTaskID(_ context.Context, taskID, userID uuid.UUID) ([]*entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.TaskID == taskID && rem.UserID == userID {
			cp := *rem
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TriggerTime.Before(out[j].TriggerTime) })
	return out, nil
}

func (r *memReminderRepo) Update(_ context.Context, reminderID, userID uuid.UUID, patch entity.ReminderPatch, updatedAt time.Time) (*entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.err != nil {
		return nil, r.err
	}
	rem, ok := r.reminders[reminderID]
	if !ok || rem.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.TriggerTime != nil {
		rem.TriggerTime = *patch.TriggerTime
		rem.FiredAt = nil
	}
	if patch.Message != nil {
		rem.Message = patch.Message
	}
	rem.UpdatedAt = updatedAt
	cp := *rem
	return &cp, nil
}

func (r *memReminderRepo) Delete(_ context.Context, reminderID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	rem, ok := r.reminders[reminderID]
	if !ok || rem.UserID != userID {
		return false, nil
	}
	delete(r.reminders, reminderID)
	return true, nil
}

func (r *memReminderRepo) GetDue(_ context.Context, now time.Time, limit int) ([]*entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.IsDue(now) {
			cp := *rem
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TriggerTime.Before(out[j].TriggerTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memReminderRepo) MarkFired(_ context.Context, reminderID uuid.UUID, triggerTime, firedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem, ok := r.reminders[reminderID]
	if !ok || rem.FiredAt != nil || !rem.TriggerTime.Equal(triggerTime) {
		return repository.ErrNotFound
	}
	rem.FiredAt = &firedAt
	return nil
}

type memPomodoroRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.PomodoroSession
	filters  []entity.PomodoroSessionFilter
	err      error
}

func newMemPomodoroRepo() *memPomodoroRepo {
	return &memPomodoroRepo{sessions: make(map[uuid.UUID]*entity.PomodoroSession)}
}

func (r *memPomodoroRepo) Create(_ context.Context, session *entity.PomodoroSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *memPomodoroRepo) Complete(_ context.Context, sessionID, userID uuid.UUID, endedAt time.Time, durationMinutes *int) (*entity.PomodoroSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.UserID != userID || s.Completed {
		return nil, repository.ErrNotFound
	}
	s.Completed = true
	s.EndedAt = &endedAt
	if durationMinutes != nil {
		s.DurationMinutes = *durationMinutes
	}
	cp := *s
	return &cp, nil
}

func (r *memPomodoroRepo) GetByIDAndUserID(_ context.Context, sessionID, userID uuid.UUID) (*entity.PomodoroSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memPomodoroRepo) GetCompleted(_ context.Context, userID uuid.UUID, filter entity.PomodoroSessionFilter) ([]*entity.PomodoroSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, filter)
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.PomodoroSession
	for _, s := range r.sessions {
		if s.UserID != userID || !s.Completed {
			continue
		}
		if filter.TaskID != nil && (s.TaskID == nil || *s.TaskID != *filter.TaskID) {
			continue
		}
		at := s.CompletedAt()
		if filter.From != nil && at.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !at.Before(*filter.To) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type memGoalRepo struct {
	goals     []*entity.Goal
	lastQuery entity.GoalQuery
	err       error
}

func (r *memGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	if r.err != nil {
		return r.err
	}
	cp := *goal
	r.goals = append(r.goals, &cp)
	return nil
}

func (r *memGoalRepo) List(_ context.Context, userID uuid.UUID, query entity.GoalQuery) ([]*entity.Goal, int, error) {
	r.lastQuery = query
	if r.err != nil {
		return nil, 0, r.err
	}
	var matched []*entity.Goal
	for _, g := range r.goals {
		if g.UserID != userID {
			continue
		}
		if query.Status != nil && g.Status != *query.Status {
			continue
		}
		matched = append(matched, g)
	}
	total := len(matched)
	start := query.Page.Offset()
	if start >= total {
		return nil, total, nil
	}
	end := min(start+query.Page.Limit, total)
	return matched[start:end], total, nil
}

type memHabitRepo struct {
	habits    []*entity.Habit
	lastQuery entity.HabitQuery
	err       error
}

func (r *memHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	if r.err != nil {
		return r.err
	}
	cp := *habit
	r.habits = append(r.habits, &cp)
	return nil
}

func (r *memHabitRepo) List(_ context.Context, userID uuid.UUID, query entity.HabitQuery) ([]*entity.Habit, int, error) {
	r.lastQuery = query
	if r.err != nil {
		return nil, 0, r.err
	}
	var matched []*entity.Habit
	for _, h := range r.habits {
		if h.UserID != userID {
			continue
		}
		if query.IsActive != nil && h.IsActive != *query.IsActive {
			continue
		}
		if query.Frequency != nil && h.Frequency != *query.Frequency {
			continue
		}
		matched = append(matched, h)
	}
	total := len(matched)
	start := query.Page.Offset()
	if start >= total {
		return nil, total, nil
	}
	end := min(start+query.Page.Limit, total)
	return matched[start:end], total, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	notified []uuid.UUID
	failFor  map[uuid.UUID]bool

	// onNotify runs after a successful publish, outside the lock
	onNotify func(reminder *entity.Reminder)
}

func (n *recordingNotifier) NotifyReminderDue(_ context.Context, reminder *entity.Reminder) error {
	n.mu.Lock()
	if n.failFor[reminder.ID] {
		n.mu.Unlock()
		return errors.New("broker unavailable")
	}
	n.notified = append(n.notified, reminder.ID)
	hook := n.onNotify
	n.mu.Unlock()

	if hook != nil {
		hook(reminder)
	}
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
