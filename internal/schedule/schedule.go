package schedule

import "slices"

type ActivityType string

const (
	ActivityStudy       ActivityType = "Study Session"
	ActivityGymWeights  ActivityType = "Gym - Weight Training"
	ActivityGymCardio   ActivityType = "Gym - Cardio"
	ActivityHomeWorkout ActivityType = "Home Quick-Hit"
	ActivityMeal        ActivityType = "Meal"
	ActivityDriving     ActivityType = "Driving Class"
	ActivityMeditation  ActivityType = "Meditation"
	ActivityBreak       ActivityType = "Break/Prep"
)

type Activity struct {
	ID                       string       `json:"id"`
	Time                     string       `json:"time"`
	Name                     string       `json:"name"`
	Type                     ActivityType `json:"type"`
	DurationMinutes          int          `json:"durationMinutes,omitempty"`
	Details                  string       `json:"details,omitempty"`
	IsPotentiallyChallenging bool         `json:"isPotentiallyChallenging,omitempty"`
	// StartMinute is the minute of the day the activity begins.
	StartMinute int `json:"startMinute"`
}

const QuickHitActivityID = "home_workout_am"

var daily = []Activity{
	{ID: QuickHitActivityID, Time: "4:00 AM", Name: "Wake, shower, Quick-Hit", Type: ActivityHomeWorkout, DurationMinutes: 30, Details: "30 push-ups, 30 crunches, 30 squats", StartMinute: 4 * 60},
	{ID: "study1", Time: "4:30 AM - 7:00 AM", Name: "Study Session 1 (CFA L1)", Type: ActivityStudy, DurationMinutes: 150, StartMinute: 4*60 + 30},
	{ID: "gym1_prep", Time: "7:00 AM - 7:30 AM", Name: "Travel to Gym/Prep", Type: ActivityBreak, DurationMinutes: 30, StartMinute: 7 * 60},
	{ID: "gym1", Time: "7:30 AM - 8:30 AM", Name: "Gym Time", Type: ActivityGymWeights, DurationMinutes: 60, Details: "Weight Training or Cardio choice", StartMinute: 7*60 + 30},
	{ID: "breakfast_prep", Time: "8:30 AM - 9:30 AM", Name: "Breakfast, shower, get ready", Type: ActivityMeal, DurationMinutes: 60, StartMinute: 8*60 + 30},
	{ID: "study2", Time: "9:30 AM - 12:30 PM", Name: "Study Session 2 (CFA L1)", Type: ActivityStudy, DurationMinutes: 180, StartMinute: 9*60 + 30},
	{ID: "lunch", Time: "12:30 PM - 1:00 PM", Name: "Lunch", Type: ActivityMeal, DurationMinutes: 30, StartMinute: 12*60 + 30},
	{ID: "driving", Time: "1:00 PM - 2:00 PM", Name: "Driving class", Type: ActivityDriving, DurationMinutes: 60, StartMinute: 13 * 60},
	{ID: "study3", Time: "2:00 PM - 5:00 PM", Name: "Study Session 3 (CFA L1 - PM Focus)", Type: ActivityStudy, DurationMinutes: 180, IsPotentiallyChallenging: true, StartMinute: 14 * 60},
	{ID: "gym2", Time: "5:00 PM - 6:00 PM", Name: "Gym - Cardio", Type: ActivityGymCardio, DurationMinutes: 60, StartMinute: 17 * 60},
	{ID: "dinner", Time: "6:00 PM - 6:30 PM", Name: "Dinner", Type: ActivityMeal, DurationMinutes: 30, StartMinute: 18 * 60},
	{ID: "study4_prep", Time: "6:30 PM - 7:00 PM", Name: "Break/Prep", Type: ActivityBreak, DurationMinutes: 30, StartMinute: 18*60 + 30},
	{ID: "study4", Time: "7:00 PM - 8:30 PM", Name: "Study Session 4 (CFA L1 - Evening Review)", Type: ActivityStudy, DurationMinutes: 90, StartMinute: 19 * 60},
	{ID: "meditation_pm", Time: "Before Bed (~10 PM)", Name: "Evening Meditation", Type: ActivityMeditation, DurationMinutes: 15, StartMinute: 22 * 60},
}

// Daily returns the fixed daily plan in chronological order.
func Daily() []Activity {
	return slices.Clone(daily)
}

func Find(id string) (Activity, bool) {
	for _, a := range daily {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func IDs() []string {
	ids := make([]string, 0, len(daily))
	for _, a := range daily {
		ids = append(ids, a.ID)
	}
	return ids
}

// Next returns the first activity starting at or after minuteOfDay.
func Next(minuteOfDay int) (Activity, bool) {
	for _, a := range daily {
		if a.StartMinute >= minuteOfDay {
			return a, true
		}
	}
	return Activity{}, false
}
