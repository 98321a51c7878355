package model

type UserProfile struct {
	Name                   string  `json:"name"`
	BodyWeight             float64 `json:"body_weight"`
	MaintenanceCalories    int     `json:"maintenance_calories"`
	EndHypertrophyCalories int     `json:"end_hypertrophy_calories"`
	EndDeficitCalories     int     `json:"end_deficit_calories"`
	ReverseWeek            int     `json:"reverse_week"`
	SetupComplete          bool    `json:"setup_complete"`
}

// Phase is a resolved program phase. A nil *Phase means no phase applies yet.
type Phase struct {
	Phase       int    `json:"phase"`
	SubPhase    string `json:"sub_phase"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PhaseOverride struct {
	Phase    int    `json:"phase"`
	SubPhase string `json:"sub_phase"`
}

type MacroTargets struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

type MacroTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

// FoodItem macros are per 100 g.
type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

// MealEntry macros are absolute values for Quantity grams.
type MealEntry struct {
	ID       string  `json:"id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity_g"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carbs_g"`
}

type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

type DayMeals struct {
	Breakfast []MealEntry `json:"breakfast"`
	Lunch     []MealEntry `json:"lunch"`
	Dinner    []MealEntry `json:"dinner"`
	Snacks    []MealEntry `json:"snacks"`
}

// Entries returns the entries of one slot. Unknown slots return nil.
func (d DayMeals) Entries(slot MealSlot) []MealEntry {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	case SlotDinner:
		return d.Dinner
	case SlotSnacks:
		return d.Snacks
	}
	return nil
}

func (d *DayMeals) slotPtr(slot MealSlot) *[]MealEntry {
	switch slot {
	case SlotBreakfast:
		return &d.Breakfast
	case SlotLunch:
		return &d.Lunch
	case SlotDinner:
		return &d.Dinner
	case SlotSnacks:
		return &d.Snacks
	}
	return nil
}

// SetEntries replaces the entries of one slot and reports whether the slot exists.
func (d *DayMeals) SetEntries(slot MealSlot, entries []MealEntry) bool {
	p := d.slotPtr(slot)
	if p == nil {
		return false
	}
	*p = entries
	return true
}

func (d DayMeals) IsEmpty() bool {
	return len(d.Breakfast) == 0 && len(d.Lunch) == 0 && len(d.Dinner) == 0 && len(d.Snacks) == 0
}

type WeightSample struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Snapshot is the persisted ledger document. CurrentPhase and CurrentMacros are
// informational and recomputed on load.
type Snapshot struct {
	SchemaVersion int                 `json:"schema_version"`
	User          UserProfile         `json:"user"`
	CurrentPhase  *Phase              `json:"current_phase,omitempty"`
	CurrentMacros *MacroTargets       `json:"current_macros,omitempty"`
	PhaseOverride *PhaseOverride      `json:"phase_override"`
	Foods         []FoodItem          `json:"foods"`
	DailyMeals    map[string]DayMeals `json:"daily_meals"`
	WeightHistory []WeightSample      `json:"weight_history"`
}
