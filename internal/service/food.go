package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
)

// FoodInput holds per-100 g values.
type FoodInput struct {
	Name     string
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

func validateFoodInput(in FoodInput) (FoodInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return in, err
	}
	if err := validateNonNegativeFloat("protein", in.Protein); err != nil {
		return in, err
	}
	if err := validateNonNegativeFloat("fat", in.Fat); err != nil {
		return in, err
	}
	if err := validateNonNegativeFloat("carbs", in.Carbs); err != nil {
		return in, err
	}
	return in, nil
}

func (l *Ledger) AddFood(in FoodInput) (model.FoodItem, error) {
	in, err := validateFoodInput(in)
	if err != nil {
		return model.FoodItem{}, err
	}
	item := model.FoodItem{
		ID:       l.newID(),
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Fat:      in.Fat,
		Carbs:    in.Carbs,
	}
	l.foods = append(l.foods, item)
	return item, nil
}

// UpdateFood replaces the values of an existing food. Entries already logged from
// it keep their original values. Unknown ids are a no-op and return false.
func (l *Ledger) UpdateFood(id string, in FoodInput) (bool, error) {
	in, err := validateFoodInput(in)
	if err != nil {
		return false, err
	}
	for i := range l.foods {
		if l.foods[i].ID != id {
			continue
		}
		l.foods[i].Name = in.Name
		l.foods[i].Calories = in.Calories
		l.foods[i].Protein = in.Protein
		l.foods[i].Fat = in.Fat
		l.foods[i].Carbs = in.Carbs
		return true, nil
	}
	return false, nil
}

// DeleteFood is idempotent and reports whether a food was removed.
func (l *Ledger) DeleteFood(id string) bool {
	for i := range l.foods {
		if l.foods[i].ID == id {
			l.foods = append(l.foods[:i], l.foods[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) Food(id string) (model.FoodItem, bool) {
	for _, f := range l.foods {
		if f.ID == id {
			return f, true
		}
	}
	return model.FoodItem{}, false
}

// FindFood matches by id first, then by case-insensitive name.
func (l *Ledger) FindFood(ref string) (model.FoodItem, bool) {
	if f, ok := l.Food(ref); ok {
		return f, true
	}
	norm := normalizeName(ref)
	for _, f := range l.foods {
		if normalizeName(f.Name) == norm {
			return f, true
		}
	}
	return model.FoodItem{}, false
}

func (l *Ledger) Foods() []model.FoodItem {
	return append(make([]model.FoodItem, 0, len(l.foods)), l.foods...)
}

// ScaleFood converts per-100 g values into an entry for grams of the food.
// Calories round to whole kcal and macros to 0.1 g.
func ScaleFood(food model.FoodItem, grams float64) model.MealEntry {
	m := grams / 100
	return model.MealEntry{
		FoodName: food.Name,
		Quantity: grams,
		Calories: int(roundHalfUp(food.Calories * m)),
		Protein:  roundTo(food.Protein*m, 1),
		Fat:      roundTo(food.Fat*m, 1),
		Carbs:    roundTo(food.Carbs*m, 1),
	}
}

// FoodCaloriesFromMacros is the 4/9/4 energy estimate for a set of macros.
func FoodCaloriesFromMacros(protein, fat, carbs float64) int {
	return int(roundHalfUp(protein*4 + fat*9 + carbs*4))
}
