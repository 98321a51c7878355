package service

import (
	"math"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

type TodayStatus struct {
	Date              string       `json:"date"`
	Phase             *model.Phase `json:"phase,omitempty"`
	Calories          int          `json:"calories"`
	ProteinG          float64      `json:"protein_g"`
	FatG              float64      `json:"fat_g"`
	CarbsG            float64      `json:"carbs_g"`
	GoalCalories      int          `json:"goal_calories,omitempty"`
	GoalProteinG      float64      `json:"goal_protein_g,omitempty"`
	GoalFatG          float64      `json:"goal_fat_g,omitempty"`
	GoalCarbsG        float64      `json:"goal_carbs_g,omitempty"`
	RemainingCalories int          `json:"remaining_calories,omitempty"`
	RemainingProteinG float64      `json:"remaining_protein_g,omitempty"`
	RemainingFatG     float64      `json:"remaining_fat_g,omitempty"`
	RemainingCarbsG   float64      `json:"remaining_carbs_g,omitempty"`
	CaloriesPct       int          `json:"calories_pct"`
	ProteinPct        int          `json:"protein_pct"`
	FatPct            int          `json:"fat_pct"`
	CarbsPct          int          `json:"carbs_pct"`
	HasTargets        bool         `json:"has_targets"`
}

// TodaySummary compares a day's intake with the targets of the phase active at now.
func TodaySummary(l *Ledger, date time.Time) *TodayStatus {
	day := beginningOfDay(date)
	status := &TodayStatus{Date: day.Format(dateLayout)}
	totals := l.DailyProgress(status.Date)
	status.Calories = totals.Calories
	status.ProteinG = totals.Protein
	status.FatG = totals.Fat
	status.CarbsG = totals.Carbs

	status.Phase = l.CurrentPhase(date)
	goal, ok := ComputeMacros(l.Profile(), status.Phase)
	if !ok {
		return status
	}
	status.HasTargets = true
	status.GoalCalories = goal.Calories
	status.GoalProteinG = goal.Protein
	status.GoalFatG = goal.Fat
	status.GoalCarbsG = goal.Carbs
	status.RemainingCalories = goal.Calories - status.Calories
	status.RemainingProteinG = goal.Protein - status.ProteinG
	status.RemainingFatG = goal.Fat - status.FatG
	status.RemainingCarbsG = goal.Carbs - status.CarbsG
	status.CaloriesPct = ProgressPercent(float64(status.Calories), float64(goal.Calories))
	status.ProteinPct = ProgressPercent(status.ProteinG, goal.Protein)
	status.FatPct = ProgressPercent(status.FatG, goal.Fat)
	status.CarbsPct = ProgressPercent(status.CarbsG, goal.Carbs)
	return status
}

// ProgressPercent is current/target as a whole percentage capped at 100.
func ProgressPercent(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(roundHalfUp(current / target * 100))
	return int(math.Min(float64(pct), 100))
}
