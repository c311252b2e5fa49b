package okr

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidObjective  = errors.New("invalid objective")
	ErrInvalidKeyResult  = errors.New("invalid key result")
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrKeyResultNotFound = errors.New("key result not found")
)

type Objective struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Quarter    string      `json:"quarter"`
	KeyResults []KeyResult `json:"keyResults"`
}

type KeyResult struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
	Unit         string  `json:"unit"`
	ObjectiveID  string  `json:"objectiveId"`
}

// Progress returns CurrentValue/TargetValue in [0, 1].
func (kr KeyResult) Progress() float64 {
	if kr.TargetValue <= 0 {
		return 0
	}
	return kr.CurrentValue / kr.TargetValue
}

func (o Objective) Validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidObjective)
	}
	if strings.TrimSpace(o.Quarter) == "" {
		return fmt.Errorf("%w: empty quarter", ErrInvalidObjective)
	}
	for _, kr := range o.KeyResults {
		if err := kr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (kr KeyResult) Validate() error {
	switch {
	case strings.TrimSpace(kr.Description) == "":
		return fmt.Errorf("%w: empty description", ErrInvalidKeyResult)
	case strings.TrimSpace(kr.Unit) == "":
		return fmt.Errorf("%w: empty unit", ErrInvalidKeyResult)
	case kr.TargetValue <= 0:
		return fmt.Errorf("%w: target must be positive, got %v", ErrInvalidKeyResult, kr.TargetValue)
	case kr.CurrentValue < 0 || kr.CurrentValue > kr.TargetValue:
		return fmt.Errorf("%w: current %v outside [0, %v]", ErrInvalidKeyResult, kr.CurrentValue, kr.TargetValue)
	}
	return nil
}

// CurrentQuarter returns a label such as "Q3 2025".
func CurrentQuarter(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", q, t.Year())
}

func clamp(v, target float64) float64 {
	return min(max(v, 0), target)
}
