package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/ai"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const mealPrompt = `Analyze the following meal description and provide an estimated nutritional breakdown.
Meal: %q
Return the response as a single JSON object with the following keys: 
"mealName" (a short, descriptive name for the meal, e.g., "Chicken Salad Sandwich"), 
"calories" (number, estimated total calories), 
"proteinGrams" (number, estimated grams of protein), 
"carbGrams" (number, estimated grams of carbohydrates), 
"fatGrams" (number, estimated grams of fat),
"notes" (string, any brief notes or assumptions made, e.g., "Assumed medium portion size").
Example: {"mealName": "Oatmeal with Berries", "calories": 350, "proteinGrams": 10, "carbGrams": 60, "fatGrams": 8, "notes": "Assumed 1 cup cooked oatmeal, 1/2 cup mixed berries."}
Ensure the response is ONLY the JSON object.`

type MealEstimator struct {
	lastError
	generator ai.Generator
}

func NewMealEstimator(g ai.Generator) *MealEstimator {
	return &MealEstimator{generator: g}
}

type mealEstimate struct {
	MealName     string   `json:"mealName"`
	Calories     *float64 `json:"calories"`
	ProteinGrams float64  `json:"proteinGrams"`
	CarbGrams    float64  `json:"carbGrams"`
	FatGrams     float64  `json:"fatGrams"`
	Notes        string   `json:"notes"`
}

// Estimate asks the model for the macros of a free-text meal description.
// The result is only accepted when it carries a calorie figure.
func (m *MealEstimator) Estimate(ctx context.Context, description string) (_ activitylog.MealAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.meal.estimate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	description = strings.TrimSpace(description)
	if description == "" {
		return activitylog.MealAnalysis{}, m.record(fmt.Errorf("%w: please enter a meal description", ErrInvalidInput))
	}

	text, err := m.generator.GenerateText(ctx, fmt.Sprintf(mealPrompt, description), true)
	if err != nil {
		return activitylog.MealAnalysis{}, m.record(fmt.Errorf("error analyzing meal: %w", err))
	}

	var est mealEstimate
	if !ai.ParseJSON(text, &est) || est.Calories == nil {
		log.Warnf("assistant: unparseable meal estimate: %q", text)
		return activitylog.MealAnalysis{}, m.record(fmt.Errorf("%w: please try rephrasing your meal description", ErrUnexpectedFormat))
	}

	_ = m.record(nil)
	return activitylog.MealAnalysis{
		MealName:     est.MealName,
		Calories:     *est.Calories,
		ProteinGrams: est.ProteinGrams,
		CarbGrams:    est.CarbGrams,
		FatGrams:     est.FatGrams,
		Notes:        est.Notes,
	}, nil
}
