package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
)

const kgPerLb = 0.45359237

// UpdateBodyWeight stores the new weight and appends a sample dated today.
// Samples are never merged, several per day are kept in order.
func (l *Ledger) UpdateBodyWeight(weightKg float64) error {
	if weightKg <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	l.user.BodyWeight = weightKg
	l.weightHistory = append(l.weightHistory, model.WeightSample{Date: l.today(), Weight: weightKg})
	return nil
}

func (l *Ledger) WeightHistory() []model.WeightSample {
	return append(make([]model.WeightSample, 0, len(l.weightHistory)), l.weightHistory...)
}

// bodyWeightUnits maps accepted body-weight units to kilograms per unit.
var bodyWeightUnits = map[string]float64{
	"kg":  1,
	"lb":  kgPerLb,
	"lbs": kgPerLb,
}

func bodyWeightFactor(unit string) (float64, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return 1, nil
	}
	factor, ok := bodyWeightUnits[u]
	if !ok {
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
	return factor, nil
}

// ToKg converts a body weight reading to kilograms. An empty unit means kg.
func ToKg(weight float64, unit string) (float64, error) {
	if weight <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	factor, err := bodyWeightFactor(unit)
	if err != nil {
		return 0, err
	}
	return weight * factor, nil
}

// WeightFromKg is the inverse of ToKg, used to display stored samples.
func WeightFromKg(weightKg float64, unit string) (float64, error) {
	factor, err := bodyWeightFactor(unit)
	if err != nil {
		return 0, err
	}
	return weightKg / factor, nil
}
