package okr

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/lifearchitect/internal/store"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"
	"github.com/2beens/lifearchitect/pkg"
)

// View names a dashboard section that links activities to key results.
type View string

const (
	ViewStudy     View = "study"
	ViewQuickHit  View = "quickhit"
	ViewCardio    View = "cardio"
	ViewGym       View = "gym"
	ViewNutrition View = "nutrition"
)

var relevantUnits = map[View][]string{
	ViewStudy:     {"hour", "min", "session", "topic", "module"},
	ViewQuickHit:  {"session", "streak", "hit"},
	ViewCardio:    {"session", "min", "km", "cal"},
	ViewGym:       {"session", "set", "exercise"},
	ViewNutrition: {"cal", "gram", "meal", "protein", "carb", "fat"},
}

// Tracker owns the objectives and their key results. It is not safe for
// concurrent use.
type Tracker struct {
	store      store.Store
	objectives []Objective
}

func NewTracker(ctx context.Context, s store.Store) (*Tracker, error) {
	objectives, err := store.Load[[]Objective](ctx, s, store.KeyObjectives, nil)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		store:      s,
		objectives: objectives,
	}, nil
}

func (t *Tracker) persist(ctx context.Context) error {
	return store.Save(ctx, t.store, store.KeyObjectives, t.objectives)
}

// Objectives returns a copy of all objectives.
func (t *Tracker) Objectives() []Objective {
	out := make([]Objective, 0, len(t.objectives))
	for _, o := range t.objectives {
		out = append(out, cloneObjective(o))
	}
	return out
}

func (t *Tracker) ObjectivesForQuarter(quarter string) []Objective {
	var out []Objective
	for _, o := range t.objectives {
		if o.Quarter == quarter {
			out = append(out, cloneObjective(o))
		}
	}
	return out
}

func (t *Tracker) FindKeyResult(krID string) (KeyResult, bool) {
	oi, ki := t.indexOfKeyResult(krID)
	if oi < 0 {
		return KeyResult{}, false
	}
	return t.objectives[oi].KeyResults[ki], true
}

// RelevantKeyResults lists the quarter's key results a view can credit.
func (t *Tracker) RelevantKeyResults(view View, quarter string) []KeyResult {
	units := relevantUnits[view]
	var out []KeyResult
	for _, o := range t.objectives {
		if o.Quarter != quarter {
			continue
		}
		for _, kr := range o.KeyResults {
			unit := strings.ToLower(kr.Unit)
			for _, u := range units {
				if strings.Contains(unit, u) {
					out = append(out, kr)
					break
				}
			}
		}
	}
	return out
}

func (t *Tracker) AddObjective(ctx context.Context, o Objective) (_ Objective, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "okr.tracker.addObjective")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := o.Validate(); err != nil {
		return Objective{}, err
	}
	if o.ID == "" {
		o.ID = pkg.NewID("obj")
	}
	if _, exists := t.indexOfObjective(o.ID); exists {
		return Objective{}, fmt.Errorf("%w: duplicate id %s", ErrInvalidObjective, o.ID)
	}
	o = cloneObjective(o)
	for i := range o.KeyResults {
		if o.KeyResults[i].ID == "" {
			o.KeyResults[i].ID = pkg.NewID("kr")
		}
		o.KeyResults[i].ObjectiveID = o.ID
	}

	t.objectives = append(t.objectives, o)
	return cloneObjective(o), t.persist(ctx)
}

// UpdateObjective replaces the objective with the same id.
func (t *Tracker) UpdateObjective(ctx context.Context, o Objective) error {
	if err := o.Validate(); err != nil {
		return err
	}
	i, ok := t.indexOfObjective(o.ID)
	if !ok {
		return ErrObjectiveNotFound
	}
	o = cloneObjective(o)
	for k := range o.KeyResults {
		if o.KeyResults[k].ID == "" {
			o.KeyResults[k].ID = pkg.NewID("kr")
		}
		o.KeyResults[k].ObjectiveID = o.ID
	}
	t.objectives[i] = o
	return t.persist(ctx)
}

// DeleteObjective removes an objective together with its key results.
func (t *Tracker) DeleteObjective(ctx context.Context, id string) error {
	i, ok := t.indexOfObjective(id)
	if !ok {
		return ErrObjectiveNotFound
	}
	t.objectives = append(t.objectives[:i], t.objectives[i+1:]...)
	return t.persist(ctx)
}

func (t *Tracker) AddKeyResult(ctx context.Context, objectiveID string, kr KeyResult) (KeyResult, error) {
	if err := kr.Validate(); err != nil {
		return KeyResult{}, err
	}
	i, ok := t.indexOfObjective(objectiveID)
	if !ok {
		return KeyResult{}, ErrObjectiveNotFound
	}
	if kr.ID == "" {
		kr.ID = pkg.NewID("kr")
	}
	kr.ObjectiveID = objectiveID
	t.objectives[i].KeyResults = append(t.objectives[i].KeyResults, kr)
	return kr, t.persist(ctx)
}

func (t *Tracker) DeleteKeyResult(ctx context.Context, krID string) error {
	oi, ki := t.indexOfKeyResult(krID)
	if oi < 0 {
		return ErrKeyResultNotFound
	}
	krs := t.objectives[oi].KeyResults
	t.objectives[oi].KeyResults = append(krs[:ki], krs[ki+1:]...)
	return t.persist(ctx)
}

// UpdateProgress adds delta to the key result, or sets it to *absolute when
// given, clamping the result into [0, target]. An unknown id is ignored.
func (t *Tracker) UpdateProgress(ctx context.Context, krID string, delta float64, absolute *float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "okr.tracker.updateProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	oi, ki := t.indexOfKeyResult(krID)
	if oi < 0 {
		return nil
	}

	kr := &t.objectives[oi].KeyResults[ki]
	next := kr.CurrentValue + delta
	if absolute != nil {
		next = *absolute
	}
	kr.CurrentValue = clamp(next, kr.TargetValue)

	return t.persist(ctx)
}

// Credit dispatches a logged activity to the linked key result, if any.
func (t *Tracker) Credit(ctx context.Context, krID string, a Activity) error {
	if krID == "" {
		return nil
	}
	kr, _ := t.FindKeyResult(krID)
	return t.UpdateProgress(ctx, krID, Dispatch(kr, a), nil)
}

func (t *Tracker) indexOfObjective(id string) (int, bool) {
	for i, o := range t.objectives {
		if o.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (t *Tracker) indexOfKeyResult(krID string) (int, int) {
	for oi, o := range t.objectives {
		for ki, kr := range o.KeyResults {
			if kr.ID == krID {
				return oi, ki
			}
		}
	}
	return -1, -1
}

func cloneObjective(o Objective) Objective {
	o.KeyResults = append([]KeyResult(nil), o.KeyResults...)
	return o
}
