package schedule

type GymDayType string

const (
	GymDayPush   GymDayType = "Push Day"
	GymDayPull   GymDayType = "Pull Day"
	GymDayLegs   GymDayType = "Legs Day"
	GymDayCardio GymDayType = "Cardio Day"
)

// GymDayRotation is the order weight-training days cycle through.
var GymDayRotation = []GymDayType{GymDayPush, GymDayPull, GymDayLegs}

type ExerciseType string

const (
	ExerciseWarmupDynamicStretch ExerciseType = "Dynamic Stretch"
	ExerciseWarmupActivation     ExerciseType = "Activation"
	ExerciseWarmupCardio         ExerciseType = "Cardio Warm-up"
	ExerciseWarmupMobility       ExerciseType = "Mobility"
	ExerciseWarmupFoamRoll       ExerciseType = "Warm-up Foam Roll"
	ExerciseMainCompound         ExerciseType = "Compound Lift"
	ExerciseMainIsolation        ExerciseType = "Isolation Exercise"
	ExerciseFinisher             ExerciseType = "Finisher"
	ExerciseCooldownStretch      ExerciseType = "Static Stretch"
	ExerciseCooldownFoamRoll     ExerciseType = "Foam Roll"
	ExerciseCooldownBreathing    ExerciseType = "Breathing Exercise"
	ExerciseCooldownActivity     ExerciseType = "Cool-down Activity"
)

var exerciseTypes = []ExerciseType{
	ExerciseWarmupDynamicStretch,
	ExerciseWarmupActivation,
	ExerciseWarmupCardio,
	ExerciseWarmupMobility,
	ExerciseWarmupFoamRoll,
	ExerciseMainCompound,
	ExerciseMainIsolation,
	ExerciseFinisher,
	ExerciseCooldownStretch,
	ExerciseCooldownFoamRoll,
	ExerciseCooldownBreathing,
	ExerciseCooldownActivity,
}

func (t ExerciseType) Valid() bool {
	for _, et := range exerciseTypes {
		if et == t {
			return true
		}
	}
	return false
}

type DetailedExercise struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           ExerciseType `json:"type"`
	Segment        string       `json:"segment,omitempty"`
	SetsReps       string       `json:"setsReps"`
	Equipment      string       `json:"equipment"`
	WhyAndCitation string       `json:"whyAndCitation,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	MuscleGroup    string       `json:"muscleGroup,omitempty"`
	Cues           string       `json:"cues,omitempty"`
}

type WorkoutPhase struct {
	Name      string             `json:"name"`
	Exercises []DetailedExercise `json:"exercises"`
}

type WorkoutPlan struct {
	ID          GymDayType     `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Phases      []WorkoutPhase `json:"phases"`
}

func PlanFor(day GymDayType) (WorkoutPlan, bool) {
	for _, p := range WorkoutPlans {
		if p.ID == day {
			return p, true
		}
	}
	return WorkoutPlan{}, false
}

// ExerciseNames lists every exercise name of the plan.
func (p WorkoutPlan) ExerciseNames() []string {
	var names []string
	for _, ph := range p.Phases {
		for _, e := range ph.Exercises {
			names = append(names, e.Name)
		}
	}
	return names
}

type QuickHitExercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cues string `json:"cues"`
}

const QuickHitTargetReps = 30

var QuickHitExercises = []QuickHitExercise{
	{ID: "qh_pushups", Name: "Push-ups", Cues: "Keep core tight, full range of motion."},
	{ID: "qh_crunches", Name: "Crunches", Cues: "Focus on abdominal contraction, avoid pulling neck."},
	{ID: "qh_squats", Name: "Squats", Cues: "Chest up, back straight, descend to parallel or below."},
}
