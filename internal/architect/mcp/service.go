package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/architect"
)

// dashboard is the read side of the controller the tools need.
type dashboard interface {
	DashboardContext() architect.DashboardContext
	StudyLogsBetween(from, to string) []activitylog.StudySessionLog
	NutritionForDay(date string) (activitylog.NutritionTotals, []activitylog.MealAnalysis)
}

// NutritionDay is the get_nutrition_for_day result.
type NutritionDay struct {
	Date   string                      `json:"date"`
	Totals activitylog.NutritionTotals `json:"totals"`
	Meals  []activitylog.MealAnalysis  `json:"meals"`
}

// contextService provides dashboard context data. Used by Handler for testability.
type contextService interface {
	GetDashboardContext(ctx context.Context) (architect.DashboardContext, error)
	GetStudyLogs(ctx context.Context, from, to string) ([]activitylog.StudySessionLog, error)
	GetNutritionForDay(ctx context.Context, date string) (NutritionDay, error)
	GetStoredState(ctx context.Context) (string, error)
}

// ContextService implements the read-only dashboard context logic.
type ContextService struct {
	dashboard dashboard
	state     StateRepo
}

func NewContextService(d dashboard, stateRepo StateRepo) *ContextService {
	return &ContextService{
		dashboard: d,
		state:     stateRepo,
	}
}

func (s *ContextService) GetDashboardContext(_ context.Context) (architect.DashboardContext, error) {
	return s.dashboard.DashboardContext(), nil
}

// GetStudyLogs returns study logs within [from, to], both YYYY-MM-DD.
func (s *ContextService) GetStudyLogs(_ context.Context, from, to string) ([]activitylog.StudySessionLog, error) {
	if from > to {
		return nil, fmt.Errorf("from_date %s is after to_date %s", from, to)
	}
	logs := s.dashboard.StudyLogsBetween(from, to)
	if logs == nil {
		logs = []activitylog.StudySessionLog{}
	}
	return logs, nil
}

// GetNutritionForDay returns the macro totals and meals of date; today when empty.
func (s *ContextService) GetNutritionForDay(_ context.Context, date string) (NutritionDay, error) {
	if date == "" {
		date = s.dashboard.DashboardContext().Date
	}
	totals, meals := s.dashboard.NutritionForDay(date)
	if meals == nil {
		meals = []activitylog.MealAnalysis{}
	}
	return NutritionDay{Date: date, Totals: totals, Meals: meals}, nil
}

// GetStoredState describes which dashboard documents are persisted.
func (s *ContextService) GetStoredState(ctx context.Context) (string, error) {
	keys, err := s.state.StoredKeys(ctx)
	if err != nil {
		return "", err
	}
	return formatStoredState(keys), nil
}

func formatStoredState(keys []StoredKey) string {
	if len(keys) == 0 {
		return "# Life Architect Stored State\n\nNothing persisted yet.\n"
	}

	var b strings.Builder
	b.WriteString("# Life Architect Stored State\n\n")
	b.WriteString("| Key | Kind | Bytes |\n|-----|------|-------|\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("| %s | %s | %d |\n", k.Key, k.Kind, k.Bytes))
	}
	return b.String()
}
