package activitylog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.July, 3, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newAggregator(t *testing.T, s store.Store) *activitylog.Aggregator {
	t.Helper()
	a, err := activitylog.NewAggregator(context.Background(), s, fixedNow)
	require.NoError(t, err)
	return a
}

func TestAggregator_AppendStampsDate(t *testing.T) {
	ctx := context.Background()
	a := newAggregator(t, store.NewMemoryStore())

	w, err := a.AppendWorkoutLog(ctx, activitylog.WorkoutLog{ExerciseID: "push_chest_flat_db_press", Sets: 3, Reps: 10, Weight: 30})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-03", w.Date)

	c, err := a.AppendCardioLog(ctx, activitylog.CardioLog{DurationMinutes: 25, Date: "2025-07-01"})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", c.Date)

	m, err := a.AppendMealLog(ctx, activitylog.MealAnalysis{MealName: gofakeit.LoremIpsumWord(), Calories: 500})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-03", m.Date)

	assert.Len(t, a.WorkoutLogs(), 1)
	assert.Len(t, a.CardioLogs(), 1)
	assert.Len(t, a.Meals(), 1)
}

func TestAggregator_AppendWorkoutDefaultsToOneSet(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	a := newAggregator(t, s)

	w, err := a.AppendWorkoutLog(ctx, activitylog.WorkoutLog{ExerciseID: "push_chest_flat_db_press", Reps: 10, Weight: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, w.Sets)
	assert.Equal(t, float64(200), w.Volume())

	stored, err := store.Load[[]activitylog.WorkoutLog](ctx, s, store.KeyWorkoutLogs, nil)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].Sets)

	w, err = a.AppendWorkoutLog(ctx, activitylog.WorkoutLog{ExerciseID: "push_chest_flat_db_press", Sets: 4, Reps: 8, Weight: 20})
	require.NoError(t, err)
	assert.Equal(t, 4, w.Sets)
}

func TestAggregator_StudyRetention(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.Save(ctx, s, store.KeyStudySessionLogs, []activitylog.StudySessionLog{
		{Date: "2025-04-03", DurationMinutes: 60, Topic: "Ethics"},
		{Date: "2025-04-04", DurationMinutes: 30, Topic: "Economics"},
	}))

	// loading keeps both, the next append prunes
	a := newAggregator(t, s)
	assert.Len(t, a.StudyLogs(), 2)

	_, err := a.AppendStudyLog(ctx, activitylog.StudySessionLog{DurationMinutes: 90, Topic: "Fixed Income"})
	require.NoError(t, err)

	logs := a.StudyLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-04-04", logs[0].Date)
	assert.Equal(t, "2025-07-03", logs[1].Date)

	persisted, err := store.Load[[]activitylog.StudySessionLog](ctx, s, store.KeyStudySessionLogs, nil)
	require.NoError(t, err)
	assert.Equal(t, logs, persisted)
}

func TestAggregator_MealRetentionOnLoad(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.Save(ctx, s, store.KeyDailyNutrition, []activitylog.MealAnalysis{
		{MealName: "old", Calories: 400, Date: "2025-06-02"},
		{MealName: "edge", Calories: 500, Date: "2025-06-03"},
		{MealName: "today", Calories: 600, Date: "2025-07-03"},
	}))

	a := newAggregator(t, s)
	meals := a.Meals()
	require.Len(t, meals, 2)
	assert.Equal(t, "edge", meals[0].MealName)

	persisted, err := store.Load[[]activitylog.MealAnalysis](ctx, s, store.KeyDailyNutrition, nil)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)

	pruned, err := a.PruneMeals(ctx)
	require.NoError(t, err)
	assert.Zero(t, pruned)
}

func TestAggregator_WorkoutAndCardioNeverPruned(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.Save(ctx, s, store.KeyWorkoutLogs, []activitylog.WorkoutLog{{ExerciseID: "x", Date: "2020-01-01"}}))
	require.NoError(t, store.Save(ctx, s, store.KeyCardioLogs, []activitylog.CardioLog{{DurationMinutes: 10, Date: "2020-01-01"}}))

	a := newAggregator(t, s)
	_, err := a.AppendWorkoutLog(ctx, activitylog.WorkoutLog{ExerciseID: "y"})
	require.NoError(t, err)
	_, err = a.AppendCardioLog(ctx, activitylog.CardioLog{DurationMinutes: 5})
	require.NoError(t, err)

	assert.Len(t, a.WorkoutLogs(), 2)
	assert.Len(t, a.CardioLogs(), 2)
}

func TestAggregator_StoreFailure(t *testing.T) {
	ctx := context.Background()
	s := store.NewFailingStore(store.NewMemoryStore())
	a := newAggregator(t, s)

	s.FailSet(store.KeyStudySessionLogs, errors.New("disk full"))
	_, err := a.AppendStudyLog(ctx, activitylog.StudySessionLog{DurationMinutes: 45, Topic: "Derivatives"})
	require.Error(t, err)
	assert.Len(t, a.StudyLogs(), 1)
}

func TestAggregator_StudyLogsBetween(t *testing.T) {
	ctx := context.Background()
	a := newAggregator(t, store.NewMemoryStore())
	for _, d := range []string{"2025-06-30", "2025-07-01", "2025-07-02", "2025-07-03"} {
		_, err := a.AppendStudyLog(ctx, activitylog.StudySessionLog{Date: d, DurationMinutes: 30, Topic: gofakeit.RandomString(schedule.ExamTopics)})
		require.NoError(t, err)
	}

	assert.Len(t, a.StudyLogsBetween("2025-07-01", "2025-07-02"), 2)
	assert.Len(t, a.StudyLogsBetween("", "2025-07-01"), 2)
	assert.Len(t, a.StudyLogsBetween("2025-07-03", ""), 1)
	assert.Len(t, a.StudyLogsBetween("", ""), 4)
}
