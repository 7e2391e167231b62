package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"productivity-service/internal/logging"
	"productivity-service/internal/middleware"
)

// Router sets up HTTP routes
type Router struct {
	taskHandler     *TaskHandler
	reminderHandler *ReminderHandler
	pomodoroHandler *PomodoroHandler
	goalHandler     *GoalHandler
	habitHandler    *HabitHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
	logger          logging.Logger
	mux             *http.ServeMux
}

// Handlers groups the resource handlers served by the router
type Handlers struct {
	Task     *TaskHandler
	Reminder *ReminderHandler
	Pomodoro *PomodoroHandler
	Goal     *GoalHandler
	Habit    *HabitHandler
}

// NewRouter creates a new router
func NewRouter(handlers Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, logger logging.Logger) *Router {
	return &Router{
		taskHandler:     handlers.Task,
		reminderHandler: handlers.Reminder,
		pomodoroHandler: handlers.Pomodoro,
		goalHandler:     handlers.Goal,
		habitHandler:    handlers.Habit,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		logger:          logger,
		mux:             http.NewServeMux(),
	}
}

// Setup configures all routes
func (r *Router) Setup() http.Handler {
	auth := func(h http.HandlerFunc) http.Handler {
		return r.authMiddleware.Auth(h)
	}

	r.mux.Handle("GET /api/tasks", auth(r.taskHandler.ListTasks))
	r.mux.Handle("POST /api/tasks", auth(r.taskHandler.CreateTask))
	r.mux.Handle("DELETE /api/tasks/{id}", auth(r.taskHandler.DeleteTask))

	r.mux.Handle("POST /api/reminders", auth(r.reminderHandler.CreateReminder))
	r.mux.Handle("GET /api/reminders/{id}", auth(r.reminderHandler.GetReminder))
	r.mux.Handle("PUT /api/reminders/{id}", auth(r.reminderHandler.UpdateReminder))
	r.mux.Handle("DELETE /api/reminders/{id}", auth(r.reminderHandler.DeleteReminder))
	r.mux.Handle("GET /api/reminders/task/{taskId}", auth(r.reminderHandler.ListTaskReminders))

	r.mux.Handle("GET /api/pomodoro/statistics", auth(r.pomodoroHandler.GetStatistics))
	r.mux.Handle("POST /api/pomodoro/sessions", auth(r.pomodoroHandler.StartSession))
	r.mux.Handle("POST /api/pomodoro/sessions/{id}/complete", auth(r.pomodoroHandler.CompleteSession))

	r.mux.Handle("GET /api/goals", auth(r.goalHandler.ListGoals))
	r.mux.Handle("POST /api/goals", auth(r.goalHandler.CreateGoal))

	r.mux.Handle("GET /api/habits", auth(r.habitHandler.ListHabits))
	r.mux.Handle("POST /api/habits", auth(r.habitHandler.CreateHabit))

	r.mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var handler http.Handler = r.mux

	handler = middleware.Recovery(r.logger)(handler)

	handler = middleware.Logging(r.logger)(handler)

	if r.rateLimiter != nil {
		handler = r.rateLimiter.Middleware(handler)
	}

	return handler
}
