package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_NoAuth(t *testing.T) {
	srv := newTestServer(t, testServices{}, false)

	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAPI_RequiresAuth(t *testing.T) {
	srv := newTestServer(t, testServices{}, false)

	for _, path := range []string{"/api/goals", "/api/habits", "/api/tasks", "/api/pomodoro/statistics"} {
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	}
}

func TestReminder_PastUpdateScenario(t *testing.T) {
	reminders := newStubReminderService(time.Now)
	srv := newTestServer(t, testServices{reminders: reminders}, false)
	taskID := uuid.New()

	inOneHour := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	rec := srv.do(t, http.MethodPost, "/api/reminders",
		fmt.Sprintf(`{"taskId":%q,"triggerTime":%q}`, taskID, inOneHour.Format(time.RFC3339)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody(t, rec)["reminder"].(map[string]interface{})
	path := "/api/reminders/" + created["id"].(string)

	anHourAgo := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	rec = srv.do(t, http.MethodPut, path, fmt.Sprintf(`{"triggerTime":%q}`, anHourAgo))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "cannot be in the past")

	rec = srv.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, inOneHour.Format(time.RFC3339), decodeBody(t, rec)["reminder"].(map[string]interface{})["triggerTime"])

	inTwoHours := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second).Format(time.RFC3339)
	rec = srv.do(t, http.MethodPut, path, fmt.Sprintf(`{"triggerTime":%q}`, inTwoHours))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, inTwoHours, decodeBody(t, rec)["reminder"].(map[string]interface{})["triggerTime"])

	rec = srv.do(t, http.MethodGet, path, "")
	assert.Equal(t, inTwoHours, decodeBody(t, rec)["reminder"].(map[string]interface{})["triggerTime"])
}

func TestReminder_NotFoundCases(t *testing.T) {
	reminders := newStubReminderService(time.Now)
	srv := newTestServer(t, testServices{reminders: reminders}, false)

	foreign, err := reminders.CreateReminder(t.Context(), uuid.New(), service.CreateReminderInput{
		TaskID:      uuid.New(),
		TriggerTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	rec := srv.do(t, http.MethodGet, "/api/reminders/"+foreign.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "reminder not found", decodeBody(t, rec)["error"])

	rec = srv.do(t, http.MethodGet, "/api/reminders/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/reminders/"+foreign.ID.String(), `{"message":"mine now"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/reminders/task/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReminder_DeleteTwice(t *testing.T) {
	reminders := newStubReminderService(time.Now)
	srv := newTestServer(t, testServices{reminders: reminders}, false)

	r, err := reminders.CreateReminder(t.Context(), srv.userID, service.CreateReminderInput{
		TaskID:      uuid.New(),
		TriggerTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	rec := srv.do(t, http.MethodDelete, "/api/reminders/"+r.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = srv.do(t, http.MethodDelete, "/api/reminders/"+r.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReminder_ListByTask(t *testing.T) {
	reminders := newStubReminderService(time.Now)
	srv := newTestServer(t, testServices{reminders: reminders}, false)
	taskID := uuid.New()

	rec := srv.do(t, http.MethodGet, "/api/reminders/task/"+taskID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reminders":[]}`, rec.Body.String())

	_, err := reminders.CreateReminder(t.Context(), srv.userID, service.CreateReminderInput{TaskID: taskID, TriggerTime: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	rec = srv.do(t, http.MethodGet, "/api/reminders/task/"+taskID.String(), "")
	assert.Len(t, decodeBody(t, rec)["reminders"], 1)
}

func TestReminder_CreateValidation(t *testing.T) {
	srv := newTestServer(t, testServices{}, false)

	rec := srv.do(t, http.MethodPost, "/api/reminders", `{"taskId":"nope","triggerTime":"tomorrow"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Validation failed", body["error"])
	assert.ElementsMatch(t, []interface{}{
		map[string]interface{}{"field": "taskId", "message": "must be a valid UUID"},
		map[string]interface{}{"field": "triggerTime", "message": "must be an RFC 3339 timestamp"},
	}, body["details"])

	rec = srv.do(t, http.MethodPost, "/api/reminders", `{"taskId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestUnexpectedError_DetailsOnlyOutsideProduction(t *testing.T) {
	for _, expose := range []bool{true, false} {
		reminders := newStubReminderService(time.Now)
		reminders.err = errors.New("connection refused")
		srv := newTestServer(t, testServices{reminders: reminders}, expose)

		rec := srv.do(t, http.MethodGet, "/api/reminders/"+uuid.NewString(), "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Internal server error", body["error"])
		if expose {
			assert.Equal(t, "connection refused", body["message"])
		} else {
			assert.NotContains(t, body, "message")
		}
	}
}

func TestGoals_List(t *testing.T) {
	goals := &stubGoalService{}
	srv := newTestServer(t, testServices{goals: goals}, false)

	rec := srv.do(t, http.MethodGet, "/api/goals?status=in_progress&category=health&search=run&targetFrom=2026-01-01&sortBy=title&sortOrder=asc&page=2&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"goals":[],"total":0,"page":2,"limit":10}`, rec.Body.String())

	q := goals.query
	require.NotNil(t, q.Status)
	assert.Equal(t, entity.GoalStatusInProgress, *q.Status)
	assert.Equal(t, "health", *q.Category)
	assert.Equal(t, "run", *q.Search)
	assert.Equal(t, "2026-01-01", q.TargetFrom.Format(dateLayout))
	assert.Nil(t, q.TargetTo)
	assert.Equal(t, "title", q.SortBy)
	assert.Equal(t, entity.SortAsc, q.SortOrder)
	assert.Equal(t, entity.Page{Number: 2, Limit: 10}, q.Page)
}

func TestGoals_ListDefaults(t *testing.T) {
	goals := &stubGoalService{
		goals: []*entity.Goal{{ID: uuid.New(), Title: "Run a marathon", Status: entity.GoalStatusNotStarted}},
		total: 41,
	}
	srv := newTestServer(t, testServices{goals: goals}, false)

	rec := srv.do(t, http.MethodGet, "/api/goals", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.EqualValues(t, 41, body["total"])
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, entity.DefaultPageLimit, body["limit"])
	assert.Len(t, body["goals"], 1)
	assert.Nil(t, goals.query.Status)
}

func TestGoals_ListRejectsInvalidQuery(t *testing.T) {
	tests := map[string]string{
		"unknown sort field": "sortBy=password",
		"sort order":         "sortOrder=up",
		"limit too large":    "limit=500",
		"page not a number":  "page=abc",
		"page zero":          "page=0",
		"status":             "status=done",
		"date":               "targetTo=31.01.2026",
	}

	for name, query := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t, testServices{}, false)

			rec := srv.do(t, http.MethodGet, "/api/goals?"+query, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Validation failed", decodeBody(t, rec)["error"])
		})
	}
}

func TestGoals_Create(t *testing.T) {
	goals := &stubGoalService{}
	srv := newTestServer(t, testServices{goals: goals}, false)

	rec := srv.do(t, http.MethodPost, "/api/goals", `{"title":"  Learn Go  ","progress":10,"targetDate":"2026-12-31"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "Learn Go", goals.input.Title)
	assert.Equal(t, 10, goals.input.Progress)
	require.NotNil(t, goals.input.TargetDate)
	assert.Equal(t, "2026-12-31", goals.input.TargetDate.Format(dateLayout))

	rec = srv.do(t, http.MethodPost, "/api/goals", `{"title":"   ","progress":150}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decodeBody(t, rec)["details"], 2)
}

func TestHabits_ListAndCreate(t *testing.T) {
	habits := &stubHabitService{}
	srv := newTestServer(t, testServices{habits: habits}, false)

	rec := srv.do(t, http.MethodGet, "/api/habits?isActive=false&frequency=weekly&sortBy=name", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"habits":[],"total":0,"page":1,"limit":20}`, rec.Body.String())
	require.NotNil(t, habits.query.IsActive)
	assert.False(t, *habits.query.IsActive)
	assert.Equal(t, entity.FrequencyWeekly, *habits.query.Frequency)

	rec = srv.do(t, http.MethodGet, "/api/habits?isActive=maybe", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"field": "isActive", "message": "must be a boolean"},
	}, decodeBody(t, rec)["details"])

	rec = srv.do(t, http.MethodGet, "/api/habits?sortBy=progress", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/habits", `{"name":"Read","color":"#FF5722","frequency":"daily","targetCount":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, entity.FrequencyDaily, habits.input.Frequency)
	assert.Equal(t, 2, habits.input.TargetCount)
	assert.Nil(t, habits.input.IsActive)

	rec = srv.do(t, http.MethodPost, "/api/habits", `{"name":"Read","color":"orange","frequency":"hourly"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decodeBody(t, rec)["details"], 2)
}

func TestHabits_CreateColorFitsColumn(t *testing.T) {
	habits := &stubHabitService{}
	srv := newTestServer(t, testServices{habits: habits}, false)

	rec := srv.do(t, http.MethodPost, "/api/habits", `{"name":"Read","color":"#aabbccdd","frequency":"daily"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"field": "color", "message": "must be at most 7 characters"},
	}, decodeBody(t, rec)["details"])
	assert.Empty(t, habits.input.Name, "rejected input must not reach the service")

	rec = srv.do(t, http.MethodPost, "/api/habits", `{"name":"Read","color":"#abc","frequency":"daily"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "#abc", *habits.input.Color)
}

func TestPomodoro_Statistics(t *testing.T) {
	pomodoro := &stubPomodoroService{
		stats: &entity.PomodoroStatistics{
			TotalSessions:   3,
			TotalDuration:   70,
			AverageDuration: 23.33,
			DailyStats:      []entity.DailyPomodoroStats{{Date: "2026-01-05", Sessions: 3, Duration: 70}},
		},
	}
	srv := newTestServer(t, testServices{pomodoro: pomodoro}, false)
	taskID := uuid.New()

	rec := srv.do(t, http.MethodGet, "/api/pomodoro/statistics?taskId="+taskID.String()+"&timezone=Europe/Berlin&from=2026-01-01&to=2026-01-31", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"statistics":{"totalSessions":3,"totalDuration":70,"averageDuration":23.33,
		"dailyStats":[{"date":"2026-01-05","sessions":3,"duration":70}]}}`, rec.Body.String())

	q := pomodoro.statsQuery
	assert.Equal(t, taskID, *q.TaskID)
	assert.Equal(t, "Europe/Berlin", q.Timezone)
	assert.Equal(t, "2026-01-01", q.From.Format(dateLayout))
	assert.Equal(t, "2026-01-31", q.To.Format(dateLayout))
}

func TestUUIDCaseIsAcceptedEverywhere(t *testing.T) {
	pomodoro := &stubPomodoroService{}
	reminders := newStubReminderService(time.Now)
	srv := newTestServer(t, testServices{pomodoro: pomodoro, reminders: reminders}, false)

	taskID := uuid.New()
	upper := strings.ToUpper(taskID.String())

	rec := srv.do(t, http.MethodGet, "/api/pomodoro/statistics?taskId="+upper, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, taskID, *pomodoro.statsQuery.TaskID)

	rec = srv.do(t, http.MethodPost, "/api/pomodoro/sessions", fmt.Sprintf(`{"taskId":%q,"durationMinutes":25}`, upper))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, taskID, *pomodoro.started.TaskID)

	triggerTime := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	rec = srv.do(t, http.MethodPost, "/api/reminders", fmt.Sprintf(`{"taskId":%q,"triggerTime":%q}`, upper, triggerTime))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/reminders/task/"+upper, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["reminders"], 1)
}

func TestPomodoro_StatisticsEmptyAndInvalid(t *testing.T) {
	srv := newTestServer(t, testServices{}, false)

	rec := srv.do(t, http.MethodGet, "/api/pomodoro/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"statistics":{"totalSessions":0,"totalDuration":0,"averageDuration":0,"dailyStats":[]}}`, rec.Body.String())

	for _, query := range []string{"taskId=42", "timezone=Mars/Olympus", "from=yesterday"} {
		rec = srv.do(t, http.MethodGet, "/api/pomodoro/statistics?"+query, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestPomodoro_StartAndComplete(t *testing.T) {
	pomodoro := &stubPomodoroService{}
	srv := newTestServer(t, testServices{pomodoro: pomodoro}, false)
	taskID := uuid.New()

	rec := srv.do(t, http.MethodPost, "/api/pomodoro/sessions", fmt.Sprintf(`{"taskId":%q,"type":"work","durationMinutes":25}`, taskID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, taskID, *pomodoro.started.TaskID)
	assert.Equal(t, entity.SessionTypeWork, pomodoro.started.Type)
	assert.Nil(t, pomodoro.started.StartedAt)

	rec = srv.do(t, http.MethodPost, "/api/pomodoro/sessions", `{"type":"nap","durationMinutes":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	sessionPath := "/api/pomodoro/sessions/" + uuid.NewString() + "/complete"

	rec = srv.do(t, http.MethodPost, sessionPath, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, pomodoro.override)

	rec = srv.do(t, http.MethodPost, sessionPath, `{"durationMinutes":20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, pomodoro.override)
	assert.Equal(t, 20, *pomodoro.override)

	rec = srv.do(t, http.MethodPost, sessionPath, `{"durationMinutes":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	pomodoro.completeErr = service.ErrSessionAlreadyCompleted
	rec = srv.do(t, http.MethodPost, sessionPath, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "pomodoro session is already completed", decodeBody(t, rec)["error"])

	pomodoro.completeErr = service.ErrSessionNotFound
	rec = srv.do(t, http.MethodPost, sessionPath, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasks(t *testing.T) {
	tasks := &stubTaskService{}
	srv := newTestServer(t, testServices{tasks: tasks}, false)

	rec := srv.do(t, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tasks":[]}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/api/tasks", `{"title":"Write report"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Write report", tasks.created.Title)

	rec = srv.do(t, http.MethodPost, "/api/tasks", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/tasks/"+tasks.created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	tasks.deleted = true
	rec = srv.do(t, http.MethodDelete, "/api/tasks/"+tasks.created.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
