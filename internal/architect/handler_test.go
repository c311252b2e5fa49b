package architect_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/ai"
	"github.com/2beens/lifearchitect/internal/architect"
	"github.com/2beens/lifearchitect/internal/assistant"
	"github.com/2beens/lifearchitect/internal/okr"
	"github.com/2beens/lifearchitect/internal/playlist"
	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/store"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	*fixture
	router    *mux.Router
	meals     *MockMealEstimator
	advisor   *MockExerciseAdvisor
	questions *MockQuestionGenerator
	playlists *MockPlaylistResolver
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	hf := &handlerFixture{
		fixture:   newFixture(t, store.NewMemoryStore()),
		router:    mux.NewRouter(),
		meals:     NewMockMealEstimator(ctrl),
		advisor:   NewMockExerciseAdvisor(ctrl),
		questions: NewMockQuestionGenerator(ctrl),
		playlists: NewMockPlaylistResolver(ctrl),
	}
	h := architect.NewHandler(hf.svc, hf.meals, hf.advisor, hf.questions, hf.playlists, hf.metrics)
	h.SetupRoutes(hf.router, hf.router.PathPrefix("/ai").Subrouter())
	return hf
}

func (hf *handlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	hf.router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_StudyComplete(t *testing.T) {
	hf := newHandlerFixture(t)
	krID := hf.addObjective(t, "hours", 500, 10)

	req, err := http.NewRequest("POST", "/study/complete", strings.NewReader(`{"minutes": 90}`))
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	hf.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hf.do(t, "POST", "/study/complete", architect.StudyCompleteRequest{Minutes: 90, Topic: "Ethics", LinkedKRID: krID})
	require.Equal(t, http.StatusOK, rec.Code)
	var res architect.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 22, res.PointsAwarded)

	rec = hf.do(t, "POST", "/study/complete", architect.StudyCompleteRequest{Minutes: -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hf.do(t, "GET", "/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var st architect.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 22, st.Points)
	assert.InDelta(t, 1.5, st.TotalStudyHours, 1e-9)
	require.Len(t, st.Objectives, 1)
	assert.InDelta(t, 11.5, st.Objectives[0].KeyResults[0].CurrentValue, 1e-9)
}

func TestHandler_Objectives(t *testing.T) {
	hf := newHandlerFixture(t)

	rec := hf.do(t, "POST", "/objectives", okr.Objective{Title: "Get Fit", Quarter: "Q3 2025"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var added okr.Objective
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	require.NotEmpty(t, added.ID)

	rec = hf.do(t, "POST", "/objectives", okr.Objective{Quarter: "Q3 2025"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hf.do(t, "POST", fmt.Sprintf("/objectives/%s/keyresults", added.ID), okr.KeyResult{
		Description: "Gym sessions", TargetValue: 40, Unit: "sessions",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var kr okr.KeyResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kr))
	assert.Equal(t, added.ID, kr.ObjectiveID)

	absolute := 100.0
	rec = hf.do(t, "PUT", fmt.Sprintf("/keyresults/%s/progress", kr.ID), architect.ProgressRequest{Absolute: &absolute})
	require.Equal(t, http.StatusOK, rec.Code)
	var progress architect.ProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	require.True(t, progress.Found)
	assert.Equal(t, 40.0, progress.KeyResult.CurrentValue)

	rec = hf.do(t, "PUT", "/keyresults/missing/progress", architect.ProgressRequest{Delta: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.False(t, progress.Found)

	rec = hf.do(t, "PUT", "/objectives/missing", okr.Objective{Title: "x", Quarter: "Q3 2025"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = hf.do(t, "GET", "/objectives?quarter=Q3%202025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []okr.Objective
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = hf.do(t, "DELETE", "/objectives/"+added.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = hf.do(t, "DELETE", "/objectives/"+added.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ScheduleAndFlows(t *testing.T) {
	hf := newHandlerFixture(t)

	rec := hf.do(t, "POST", "/schedule/study2/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = hf.do(t, "GET", "/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sched architect.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sched))
	assert.Len(t, sched.Activities, len(schedule.Daily()))
	assert.Equal(t, []string{"study2"}, sched.CompletedActivities)

	rec = hf.do(t, "POST", "/quickhit/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = hf.do(t, "POST", "/gym/complete", architect.GymCompleteRequest{IsWeightTraining: true, DayType: schedule.GymDayPush})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = hf.do(t, "POST", "/gym/complete", architect.GymCompleteRequest{DayType: "Arms Day"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hf.do(t, "POST", "/gym/sets", activitylog.WorkoutLog{ExerciseID: "push_chest_flat_db_press", Sets: 3, Reps: 10, Weight: 30})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = hf.do(t, "POST", "/gym/cardio", activitylog.CardioLog{Type: "Rowing"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = hf.do(t, "POST", "/gym/cardio", activitylog.CardioLog{Type: "Rowing", DurationMinutes: 20})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = hf.do(t, "POST", "/meals", activitylog.MealAnalysis{MealName: "Oats", Calories: 350})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = hf.do(t, "POST", "/meditation/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// 20 toggle + 15 quick-hit + 30 gym + 15 cardio + 5 meal + 10 meditation
	assert.Equal(t, 95, hf.svc.State().Points)

	rec = hf.do(t, "GET", "/analytics/gym", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var gym architect.GymAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gym))
	assert.Equal(t, schedule.GymDayPull, gym.NextDay)
	assert.Len(t, gym.WorkoutLogs, 1)
	assert.Len(t, gym.CardioLogs, 1)

	rec = hf.do(t, "GET", "/analytics/nutrition?date=bad", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = hf.do(t, "GET", "/analytics/study?days=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var study architect.StudyAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &study))
	assert.Len(t, study.MinutesPerDay, 3)
}

func TestHandler_Sessions(t *testing.T) {
	hf := newHandlerFixture(t)

	rec := hf.do(t, "POST", "/sessions/yoga/start", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hf.do(t, "POST", "/sessions/meditation/pause", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = hf.do(t, "POST", "/sessions/study/start", architect.SessionStartRequest{DurationSeconds: 3600, Topic: "Ethics"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = hf.do(t, "GET", "/sessions/study", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"running"`)
	assert.Contains(t, rec.Body.String(), `"durationSeconds":3600`)

	rec = hf.do(t, "POST", "/sessions/study/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"study"`)
	// ended before a full minute, nothing booked
	assert.Zero(t, hf.svc.State().Points)
}

func TestHandler_SettingsAndPermission(t *testing.T) {
	hf := newHandlerFixture(t)

	theme := "neon"
	rec := hf.do(t, "PUT", "/settings", architect.SettingsUpdate{Theme: &theme})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	theme = architect.ThemeHighContrast
	rec = hf.do(t, "PUT", "/settings", architect.SettingsUpdate{Theme: &theme})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, theme, hf.svc.Settings().Theme)

	rec = hf.do(t, "POST", "/notifications/permission", architect.PermissionRequest{Granted: false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"permission":"denied"}`, rec.Body.String())

	rec = hf.do(t, "POST", "/notifications/permission", architect.PermissionRequest{Granted: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"permission":"denied"}`, rec.Body.String())
}

func TestHandler_AIMeal(t *testing.T) {
	hf := newHandlerFixture(t)

	hf.meals.EXPECT().
		Estimate(gomock.Any(), "two eggs and toast").
		Return(activitylog.MealAnalysis{MealName: "Eggs on toast", Calories: 420, ProteinGrams: 20}, nil)
	rec := hf.do(t, "POST", "/ai/meal", architect.MealEstimateRequest{Description: "two eggs and toast"})
	require.Equal(t, http.StatusOK, rec.Code)
	var meal activitylog.MealAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meal))
	assert.Equal(t, 420.0, meal.Calories)
	// an estimate alone never changes the log
	assert.Zero(t, hf.svc.State().Points)

	hf.meals.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(activitylog.MealAnalysis{}, ai.ErrNotConfigured)
	rec = hf.do(t, "POST", "/ai/meal", architect.MealEstimateRequest{Description: "salad"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	hf.meals.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(activitylog.MealAnalysis{}, assistant.ErrUnexpectedFormat)
	rec = hf.do(t, "POST", "/ai/meal", architect.MealEstimateRequest{Description: "salad"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected format")

	assert.Equal(t, float64(1), testutil.ToFloat64(hf.metrics.CounterAICalls.WithLabelValues("meal", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(hf.metrics.CounterAICalls.WithLabelValues("meal", "disabled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(hf.metrics.CounterAICalls.WithLabelValues("meal", "error")))
}

func TestHandler_AIExerciseAlternative(t *testing.T) {
	hf := newHandlerFixture(t)

	rec := hf.do(t, "POST", "/ai/exercise-alternative", architect.ExerciseAlternativeRequest{
		DayType: schedule.GymDayPush, ExerciseID: "missing",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	hf.advisor.EXPECT().
		Alternative(gomock.Any(), gomock.Any(), gomock.Any(), schedule.DefaultEquipment, gomock.Any()).
		DoAndReturn(func(_ any, ex schedule.DetailedExercise, planName, _ string, existing []string) (schedule.DetailedExercise, error) {
			assert.Equal(t, "push_chest_flat_db_press", ex.ID)
			assert.NotEmpty(t, planName)
			assert.Contains(t, existing, ex.Name)
			return schedule.DetailedExercise{ID: "ai_alt_1", Name: "Floor Press", Cues: "Elbows at 45°"}, nil
		})
	rec = hf.do(t, "POST", "/ai/exercise-alternative", architect.ExerciseAlternativeRequest{
		DayType: schedule.GymDayPush, ExerciseID: "push_chest_flat_db_press",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Floor Press")
}

func TestHandler_AIQuestions(t *testing.T) {
	hf := newHandlerFixture(t)

	hf.questions.EXPECT().Generate(gomock.Any(), "", "", "").Return("", assistant.ErrInvalidInput)
	rec := hf.do(t, "POST", "/ai/questions", architect.QuestionsRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	hf.questions.EXPECT().Generate(gomock.Any(), "Ethics", "Standards", "").Return("1. Which standard...", nil)
	rec = hf.do(t, "POST", "/ai/questions", architect.QuestionsRequest{Topic: "Ethics", SubTopic: "Standards"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"questions":"1. Which standard..."}`, rec.Body.String())

	hf.questions.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("gemini api status 500"))
	rec = hf.do(t, "POST", "/ai/questions", architect.QuestionsRequest{Topic: "Ethics"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "gemini api status 500")
}

func TestHandler_AIErrorsReportTheirOwnCause(t *testing.T) {
	hf := newHandlerFixture(t)

	// two overlapping failures each answer with the error their call returned
	hf.questions.EXPECT().Generate(gomock.Any(), "Ethics", gomock.Any(), gomock.Any()).Return("", errors.New("gemini api status 429"))
	hf.questions.EXPECT().Generate(gomock.Any(), "Equity", gomock.Any(), gomock.Any()).Return("", errors.New("gemini api status 503"))

	rec := hf.do(t, "POST", "/ai/questions", architect.QuestionsRequest{Topic: "Ethics"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "status 429")
	assert.NotContains(t, rec.Body.String(), "status 503")

	rec = hf.do(t, "POST", "/ai/questions", architect.QuestionsRequest{Topic: "Equity"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "status 503")

	hf.meals.EXPECT().Estimate(gomock.Any(), "soup").Return(activitylog.MealAnalysis{}, assistant.ErrUnexpectedFormat)
	rec = hf.do(t, "POST", "/ai/meal", architect.MealEstimateRequest{Description: "soup"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), assistant.ErrUnexpectedFormat.Error())
}

func TestHandler_Playlist(t *testing.T) {
	hf := newHandlerFixture(t)

	hf.playlists.EXPECT().
		Resolve(gomock.Any(), schedule.DefaultPlaylist).
		Return(playlist.Info{ID: "5gR4gv2XglaEFg2D2zbd8A", Name: "Deep Focus", Resolved: true}, nil)
	rec := hf.do(t, "GET", "/meditation/playlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deep Focus")
}
