package habits

import (
	"context"
	"errors"

	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/store"
)

const (
	WeightTrainingPoints = schedule.WeightPoints
	OtherGymPoints       = schedule.CardioPoints
	QuickHitPoints       = schedule.QuickHitPoints
)

// Engine keeps the Push/Pull/Legs rotation pointer and the quick-hit streak.
// It is not safe for concurrent use.
type Engine struct {
	store store.Store

	gymDayIndex      int
	quickHitStreak   int
	lastQuickHitDate string
}

func NewEngine(ctx context.Context, s store.Store) (*Engine, error) {
	idx, err := store.Load(ctx, s, store.KeyGymDayIndex, 0)
	if err != nil {
		return nil, err
	}
	streak, err := store.Load(ctx, s, store.KeyQuickHitStreak, 0)
	if err != nil {
		return nil, err
	}
	last, err := store.Load(ctx, s, store.KeyLastQuickHitDate, "")
	if err != nil {
		return nil, err
	}

	n := len(schedule.GymDayRotation)
	return &Engine{
		store:            s,
		gymDayIndex:      ((idx % n) + n) % n,
		quickHitStreak:   max(streak, 0),
		lastQuickHitDate: last,
	}, nil
}

func (e *Engine) GymDayIndex() int {
	return e.gymDayIndex
}

// CurrentDayType is the next suggested weight-training day.
func (e *Engine) CurrentDayType() schedule.GymDayType {
	return schedule.GymDayRotation[e.gymDayIndex]
}

func (e *Engine) QuickHitStreak() int {
	return e.quickHitStreak
}

func (e *Engine) LastQuickHitDate() string {
	return e.lastQuickHitDate
}

// CompleteGymSession advances the rotation after a weight-training session
// on a non-cardio day and returns the points the session is worth.
func (e *Engine) CompleteGymSession(ctx context.Context, isWeightTraining bool, dayType schedule.GymDayType) (int, error) {
	if !isWeightTraining {
		return OtherGymPoints, nil
	}
	if dayType == schedule.GymDayCardio {
		return WeightTrainingPoints, nil
	}

	e.gymDayIndex = (e.gymDayIndex + 1) % len(schedule.GymDayRotation)
	return WeightTrainingPoints, store.Save(ctx, e.store, store.KeyGymDayIndex, e.gymDayIndex)
}

// CompleteQuickHit extends the streak at most once per calendar day and
// returns the points for the completion, which are awarded every time.
func (e *Engine) CompleteQuickHit(ctx context.Context, today string) (int, error) {
	var errs []error
	if e.lastQuickHitDate != today {
		e.quickHitStreak++
		errs = append(errs, store.Save(ctx, e.store, store.KeyQuickHitStreak, e.quickHitStreak))
	}
	e.lastQuickHitDate = today
	errs = append(errs, store.Save(ctx, e.store, store.KeyLastQuickHitDate, e.lastQuickHitDate))

	return QuickHitPoints, errors.Join(errs...)
}
