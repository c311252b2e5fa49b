package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/2beens/lifearchitect/internal/store"
)

//go:generate mockgen -destination=store_mocks_test.go -package=ledger_test github.com/2beens/lifearchitect/internal/store Store

var ErrNegativePoints = errors.New("points amount must not be negative")

// Ledger tracks the point total and the set of completed activities.
// It is not safe for concurrent use.
type Ledger struct {
	store store.Store

	points    int
	completed []string
	index     map[string]struct{}
}

func NewLedger(ctx context.Context, s store.Store) (*Ledger, error) {
	points, err := store.Load(ctx, s, store.KeyPoints, 0)
	if err != nil {
		return nil, err
	}
	completed, err := store.Load[[]string](ctx, s, store.KeyCompletedActivities, nil)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		store:  s,
		points: max(points, 0),
		index:  map[string]struct{}{},
	}
	for _, id := range completed {
		if _, dup := l.index[id]; dup {
			continue
		}
		l.index[id] = struct{}{}
		l.completed = append(l.completed, id)
	}
	return l, nil
}

func (l *Ledger) Points() int {
	return l.points
}

func (l *Ledger) AddPoints(ctx context.Context, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePoints, amount)
	}
	if amount == 0 {
		return nil
	}
	l.points += amount
	return store.Save(ctx, l.store, store.KeyPoints, l.points)
}

// MarkActivityCompleted records id and awards points the first time it is
// seen. It reports whether the id was newly marked.
func (l *Ledger) MarkActivityCompleted(ctx context.Context, id string, points int) (bool, error) {
	if l.IsCompleted(id) {
		return false, nil
	}
	if points < 0 {
		return false, fmt.Errorf("%w: %d", ErrNegativePoints, points)
	}

	l.index[id] = struct{}{}
	l.completed = append(l.completed, id)
	err := store.Save(ctx, l.store, store.KeyCompletedActivities, l.completed)
	return true, errors.Join(err, l.AddPoints(ctx, points))
}

func (l *Ledger) IsCompleted(id string) bool {
	_, ok := l.index[id]
	return ok
}

// CompletedActivities returns the completed ids in marking order.
func (l *Ledger) CompletedActivities() []string {
	return slices.Clone(l.completed)
}

// ResetDailyCompletions unmarks the given daily schedule ids so the next day
// starts fresh. Points already earned are kept, as are one-off markers.
func (l *Ledger) ResetDailyCompletions(ctx context.Context, scheduleIDs []string) (int, error) {
	before := len(l.completed)
	l.completed = slices.DeleteFunc(l.completed, func(id string) bool {
		return slices.Contains(scheduleIDs, id)
	})
	removed := before - len(l.completed)
	if removed == 0 {
		return 0, nil
	}
	for _, id := range scheduleIDs {
		delete(l.index, id)
	}
	return removed, store.Save(ctx, l.store, store.KeyCompletedActivities, l.completed)
}
