package service

import (
	"fmt"
	"strings"
)

// Mass units accepted when logging a quantity, as grams per unit.
var massUnits = map[string]float64{
	"mg":  0.001,
	"g":   1,
	"kg":  1000,
	"oz":  28.349523125,
	"lb":  453.59237,
	"lbs": 453.59237,
}

// ToGrams converts a logged amount to grams. An empty unit means grams.
func ToGrams(amount float64, unit string) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("quantity must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = "g"
	}
	factor, ok := massUnits[u]
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q (use mg, g, kg, oz or lb)", unit)
	}
	return roundTo(amount*factor, 1), nil
}
