package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
	_ "time/tzdata"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"
	"productivity-service/internal/domain/service"

	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

type pomodoroService struct {
	sessionRepo repository.PomodoroRepository
	taskRepo    repository.TaskRepository
	now         func() time.Time
}

// NewPomodoroService creates a new pomodoro service
func NewPomodoroService(sessionRepo repository.PomodoroRepository, taskRepo repository.TaskRepository) service.PomodoroService {
	return &pomodoroService{
		sessionRepo: sessionRepo,
		taskRepo:    taskRepo,
		now:         time.Now,
	}
}

func (s *pomodoroService) StartSession(ctx context.Context, userID uuid.UUID, input service.StartSessionInput) (*entity.PomodoroSession, error) {
	if input.TaskID != nil {
		exists, err := s.taskRepo.ExistsForUser(ctx, *input.TaskID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check task: %w", err)
		}
		if !exists {
			return nil, service.ErrTaskNotFound
		}
	}

	now := s.now().UTC()
	startedAt := now
	if input.StartedAt != nil {
		startedAt = input.StartedAt.UTC()
	}

	sessionType := input.Type
	if sessionType == "" {
		sessionType = entity.SessionTypeWork
	}

	session := &entity.PomodoroSession{
		ID:              uuid.New(),
		UserID:          userID,
		TaskID:          input.TaskID,
		Type:            sessionType,
		StartedAt:       startedAt,
		DurationMinutes: input.DurationMinutes,
		CreatedAt:       now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create pomodoro session: %w", err)
	}

	return session, nil
}

func (s *pomodoroService) CompleteSession(ctx context.Context, sessionID, userID uuid.UUID, durationMinutes *int) (*entity.PomodoroSession, error) {
	session, err := s.sessionRepo.Complete(ctx, sessionID, userID, s.now().UTC(), durationMinutes)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to complete pomodoro session: %w", err)
	}

	// Nothing was updated: either the session is missing or it is already completed
	existing, err := s.sessionRepo.GetByIDAndUserID(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get pomodoro session: %w", err)
	}
	if existing.Completed {
		return nil, service.ErrSessionAlreadyCompleted
	}
	return nil, service.ErrSessionNotFound
}

func (s *pomodoroService) GetPomodoroStatistics(ctx context.Context, userID uuid.UUID, query service.StatisticsQuery) (*entity.PomodoroStatistics, error) {
	loc := time.UTC
	if query.Timezone != "" {
		l, err := time.LoadLocation(query.Timezone)
		if err != nil {
			return nil, service.ErrInvalidTimezone
		}
		loc = l
	}

	filter := entity.PomodoroSessionFilter{TaskID: query.TaskID}
	if query.From != nil {
		from := startOfDay(*query.From, loc)
		filter.From = &from
	}
	if query.To != nil {
		to := startOfDay(*query.To, loc).AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, service.ErrInvalidDateRange
	}

	sessions, err := s.sessionRepo.GetCompleted(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get pomodoro sessions: %w", err)
	}

	return BuildStatistics(sessions, loc), nil
}

// BuildStatistics aggregates completed sessions, bucketing each by the local
// calendar day of its completion instant. Incomplete sessions are ignored.
func BuildStatistics(sessions []*entity.PomodoroSession, loc *time.Location) *entity.PomodoroStatistics {
	stats := &entity.PomodoroStatistics{
		DailyStats: []entity.DailyPomodoroStats{},
	}

	byDay := make(map[string]*entity.DailyPomodoroStats)
	for _, session := range sessions {
		if !session.Completed {
			continue
		}

		stats.TotalSessions++
		stats.TotalDuration += session.DurationMinutes

		day := session.CompletedAt().In(loc).Format(dayLayout)
		bucket, ok := byDay[day]
		if !ok {
			bucket = &entity.DailyPomodoroStats{Date: day}
			byDay[day] = bucket
		}
		bucket.Sessions++
		bucket.Duration += session.DurationMinutes
	}

	if stats.TotalSessions == 0 {
		return stats
	}

	stats.AverageDuration = math.Round(float64(stats.TotalDuration)/float64(stats.TotalSessions)*100) / 100

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		stats.DailyStats = append(stats.DailyStats, *byDay[day])
	}

	return stats
}

func startOfDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
