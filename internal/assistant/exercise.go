package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/lifearchitect/internal/ai"
	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const exercisePrompt = `The user cannot perform or wants an alternative for the exercise: %q (Type: %s, Segment: %s).
This exercise is part of a %q.
The user has the following equipment: %q.
Suggest ONE distinct alternative exercise suitable for this workout type, segment, and equipment. The alternative should be different from these exercises already in the plan: %s.
Provide its name, very brief cues (1-2 short sentences), its type (e.g., MainCompound, MainIsolation), and primary muscle group (e.g., Chest, Back, Legs, Shoulders).
Return the response as a SINGLE JSON object with keys: "id" (unique string like "ai_alt_uuid"), "name", "cues", "type" (from DetailedExerciseType enum values), "segment", "muscleGroup", "equipment" (what it uses from available).
Example: {"id": "ai_alt_db_row", "name": "Dumbbell Row", "cues": "Support body. Pull to hip.", "type": "MainCompound", "segment": "Back Thickness", "muscleGroup": "Back", "equipment": "Dumbbell + bench"}
Ensure the response is ONLY the single JSON object.`

const aiSuggestedNote = "AI Suggested Alternative"

type ExerciseAdvisor struct {
	lastError
	generator ai.Generator
	now       func() time.Time
}

func NewExerciseAdvisor(g ai.Generator, now func() time.Time) *ExerciseAdvisor {
	return &ExerciseAdvisor{generator: g, now: now}
}

type exerciseSuggestion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cues        string `json:"cues"`
	Type        string `json:"type"`
	Segment     string `json:"segment"`
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment"`
}

// Alternative suggests a replacement for exercise within the plan. Missing
// fields of the suggestion fall back to the replaced exercise.
func (a *ExerciseAdvisor) Alternative(
	ctx context.Context,
	exercise schedule.DetailedExercise,
	planName string,
	equipment string,
	existing []string,
) (_ schedule.DetailedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.exercise.alternative")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(exercise.Name) == "" {
		return schedule.DetailedExercise{}, a.record(fmt.Errorf("%w: no exercise selected", ErrInvalidInput))
	}
	if strings.TrimSpace(equipment) == "" {
		equipment = schedule.DefaultEquipment
	}

	prompt := fmt.Sprintf(exercisePrompt,
		exercise.Name, exercise.Type, exercise.Segment,
		planName, equipment, strings.Join(existing, ", "),
	)
	text, err := a.generator.GenerateText(ctx, prompt, true)
	if err != nil {
		return schedule.DetailedExercise{}, a.record(fmt.Errorf("error getting alternative: %w", err))
	}

	var s exerciseSuggestion
	if !ai.ParseJSON(text, &s) || s.Name == "" || s.Cues == "" {
		log.Warnf("assistant: unparseable exercise alternative: %q", text)
		return schedule.DetailedExercise{}, a.record(fmt.Errorf("%w: could not get a valid alternative", ErrUnexpectedFormat))
	}

	alt := schedule.DetailedExercise{
		ID:             s.ID,
		Name:           s.Name,
		Type:           schedule.ExerciseType(s.Type),
		Segment:        s.Segment,
		SetsReps:       exercise.SetsReps,
		Equipment:      s.Equipment,
		WhyAndCitation: aiSuggestedNote,
		MuscleGroup:    s.MuscleGroup,
		Cues:           s.Cues,
	}
	if alt.ID == "" {
		alt.ID = fmt.Sprintf("ai_alt_%d", a.now().UnixMilli())
	}
	if !alt.Type.Valid() {
		alt.Type = schedule.ExerciseMainIsolation
	}
	if alt.Segment == "" {
		alt.Segment = exercise.Segment
	}
	if alt.Equipment == "" {
		alt.Equipment = exercise.Equipment
	}
	if alt.MuscleGroup == "" {
		alt.MuscleGroup = exercise.MuscleGroup
	}

	_ = a.record(nil)
	return alt, nil
}
