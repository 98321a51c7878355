package service

import (
	"math"

	"github.com/saadjs/coach-cli/internal/model"
)

const (
	proteinPerKgMaintenance = 1.8
	proteinPerKgDeficit     = 2.2
	fatPerKgDeficit         = 0.9
	fatShareMaintenance     = 0.25
	reverseDietStepKcal     = 150
)

var subPhaseDeficits = map[string]int{
	SubPhaseInicioDeficit:       400,
	SubPhaseContinuacionDeficit: 550,
	SubPhasePulido:              700,
}

// ComputeMacros derives daily targets for a profile in a phase. ok is false when
// phase is nil, in which case the zero targets mean "not ready".
func ComputeMacros(profile model.UserProfile, phase *model.Phase) (model.MacroTargets, bool) {
	if phase == nil {
		return model.MacroTargets{}, false
	}
	bw := profile.BodyWeight
	maintenance := profile.MaintenanceCalories

	switch {
	case phase.Phase == 1 && phase.SubPhase == SubPhaseDescarga:
		return maintenanceSplit(orInt(profile.EndHypertrophyCalories, maintenance), bw), true
	case phase.Phase == 1 && phase.SubPhase == SubPhaseMantenimiento,
		phase.Phase == 2 && phase.SubPhase == SubPhaseDescansoDieta,
		phase.Phase == 4 && phase.SubPhase == SubPhaseDescargaVerano:
		return maintenanceSplit(maintenance, bw), true
	case phase.Phase == 2 && phase.SubPhase == SubPhaseInicioDeficit,
		phase.Phase == 2 && phase.SubPhase == SubPhaseContinuacionDeficit,
		phase.Phase == 3 && phase.SubPhase == SubPhasePulido:
		return deficitSplit(maintenance-subPhaseDeficits[phase.SubPhase], bw), true
	case phase.Phase == 4 && phase.SubPhase == SubPhaseDietaInversa:
		week := profile.ReverseWeek
		if week < 1 {
			week = 1
		}
		base := orInt(profile.EndDeficitCalories, maintenance-subPhaseDeficits[SubPhasePulido])
		return maintenanceSplit(base+reverseDietStepKcal*week, bw), true
	}
	return clampTargets(model.MacroTargets{Calories: maintenance}), true
}

// maintenanceSplit puts 25% of calories into fat and the remainder into carbs.
func maintenanceSplit(calories int, bw float64) model.MacroTargets {
	protein := roundHalfUp(bw * proteinPerKgMaintenance)
	fatKcal := roundHalfUp(float64(calories) * fatShareMaintenance)
	fat := roundHalfUp(fatKcal / 9)
	carbs := roundHalfUp((float64(calories) - protein*4 - fatKcal) / 4)
	return clampTargets(model.MacroTargets{Calories: calories, Protein: protein, Fat: fat, Carbs: carbs})
}

// deficitSplit fixes fat per kg of body weight.
func deficitSplit(calories int, bw float64) model.MacroTargets {
	protein := roundHalfUp(bw * proteinPerKgDeficit)
	fat := roundHalfUp(bw * fatPerKgDeficit)
	carbs := roundHalfUp((float64(calories) - protein*4 - fat*9) / 4)
	return clampTargets(model.MacroTargets{Calories: calories, Protein: protein, Fat: fat, Carbs: carbs})
}

// clampTargets floors every value at zero. Overshoot is absorbed by carbs; fat
// and protein are not re-derived.
func clampTargets(t model.MacroTargets) model.MacroTargets {
	if t.Calories < 0 {
		t.Calories = 0
	}
	t.Protein = math.Max(0, t.Protein)
	t.Fat = math.Max(0, t.Fat)
	t.Carbs = math.Max(0, t.Carbs)
	return t
}

func orInt(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}

// roundHalfUp rounds .5 toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return roundHalfUp(v*p) / p
}
