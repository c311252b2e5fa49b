package architect

import (
	"context"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/playlist"
	"github.com/2beens/lifearchitect/internal/schedule"
)

//go:generate mockgen -source=$GOFILE -destination=collaborators_mocks_test.go -package=architect_test

// AI features run outside the controller lock; their results reach the
// state only through a separate flow call.

type MealEstimator interface {
	Estimate(ctx context.Context, description string) (activitylog.MealAnalysis, error)
}

type ExerciseAdvisor interface {
	Alternative(
		ctx context.Context,
		exercise schedule.DetailedExercise,
		planName string,
		equipment string,
		existing []string,
	) (schedule.DetailedExercise, error)
}

type QuestionGenerator interface {
	Generate(ctx context.Context, topic, subTopic, subSubTopic string) (string, error)
}

type PlaylistResolver interface {
	Resolve(ctx context.Context, playlistURL string) (playlist.Info, error)
}
