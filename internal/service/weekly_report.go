package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

const (
	reportWindowDays = 7
	topFoodsLimit    = 10

	adherenceExcellentDays = 6
	adherenceModerateDays  = 4
	calorieDeviationGood   = 50.0
	calorieDeviationOK     = 150.0
	proteinSufficientRatio = 0.90
	breakfastShareMin      = 20.0
	breakfastShareMax      = 35.0
	lunchShareMin          = 30.0
	lunchShareMax          = 45.0
	stableWeightBandKg     = 0.5
	maxWeeklyLossPct       = 1.0
	proteinRichGrams       = 20.0
	proteinRichEnergyShare = 0.30
	top3ShareVaried        = 40.0
	top3ShareLimited       = 60.0
)

type WeekDay struct {
	Date     string            `json:"date"`
	Weekday  string            `json:"weekday"`
	Totals   model.MacroTotals `json:"totals"`
	Meals    model.DayMeals    `json:"meals"`
	HasData  bool              `json:"has_data"`
	Adherent bool              `json:"adherent"`
}

type FoodFrequency struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	TotalCalories int     `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein_g"`
	TotalFat      float64 `json:"total_fat_g"`
	TotalCarbs    float64 `json:"total_carbs_g"`
	AvgCalories   float64 `json:"avg_calories"`
	AvgProtein    float64 `json:"avg_protein_g"`
	AvgFat        float64 `json:"avg_fat_g"`
	AvgCarbs      float64 `json:"avg_carbs_g"`
}

type SlotBreakdown struct {
	Slot        model.MealSlot    `json:"slot"`
	Days        int               `json:"days"`
	Totals      model.MacroTotals `json:"totals"`
	AvgCalories float64           `json:"avg_calories"`
	AvgProtein  float64           `json:"avg_protein_g"`
	AvgFat      float64           `json:"avg_fat_g"`
	AvgCarbs    float64           `json:"avg_carbs_g"`
	SharePct    float64           `json:"share_pct"`
}

type WeightChange struct {
	Start       float64 `json:"start_kg"`
	End         float64 `json:"end_kg"`
	Change      float64 `json:"change_kg"`
	Samples     int     `json:"samples"`
	FromHistory bool    `json:"from_history"`
}

type InsightLevel string

const (
	InsightExcellent InsightLevel = "excellent"
	InsightGood      InsightLevel = "good"
	InsightModerate  InsightLevel = "moderate"
	InsightPoor      InsightLevel = "poor"
	InsightInfo      InsightLevel = "info"
)

type Insight struct {
	Topic   string       `json:"topic"`
	Level   InsightLevel `json:"level"`
	Message string       `json:"message"`
}

type WeeklyReport struct {
	FromDate      string             `json:"from_date"`
	ToDate        string             `json:"to_date"`
	GeneratedAt   time.Time          `json:"generated_at"`
	User          model.UserProfile  `json:"user"`
	Phase         *model.Phase       `json:"phase,omitempty"`
	Targets       model.MacroTargets `json:"targets"`
	HasTargets    bool               `json:"has_targets"`
	Days          []WeekDay          `json:"days"`
	DaysWithData  int                `json:"days_with_data"`
	AvgCalories   float64            `json:"avg_calories"`
	AvgProtein    float64            `json:"avg_protein_g"`
	AvgFat        float64            `json:"avg_fat_g"`
	AvgCarbs      float64            `json:"avg_carbs_g"`
	TopFoods      []FoodFrequency    `json:"top_foods"`
	DistinctFoods int                `json:"distinct_foods"`
	Meals         []SlotBreakdown    `json:"meals"`
	AdherenceDays int                `json:"adherence_days"`
	Weight        WeightChange       `json:"weight"`
	Analysis      []Insight          `json:"analysis"`
}

// WeeklyReportFor builds the report for the seven days ending on today using the
// phase and targets the ledger resolves at today.
func WeeklyReportFor(l *Ledger, today time.Time) *WeeklyReport {
	phase := l.CurrentPhase(today)
	targets, _ := ComputeMacros(l.Profile(), phase)
	return GenerateWeeklyReport(l, phase, targets, today)
}

// GenerateWeeklyReport aggregates the seven calendar days ending on today
// (inclusive, oldest first). It tolerates an empty ledger.
func GenerateWeeklyReport(l *Ledger, phase *model.Phase, targets model.MacroTargets, today time.Time) *WeeklyReport {
	end := beginningOfDay(today)
	start := end.AddDate(0, 0, -(reportWindowDays - 1))
	r := &WeeklyReport{
		FromDate:    start.Format(dateLayout),
		ToDate:      end.Format(dateLayout),
		GeneratedAt: today,
		User:        l.Profile(),
		Phase:       phase,
		Targets:     targets,
		HasTargets:  phase != nil,
		Days:        make([]WeekDay, 0, reportWindowDays),
		TopFoods:    make([]FoodFrequency, 0),
		Meals:       make([]SlotBreakdown, 0, len(model.MealSlots)),
		Analysis:    make([]Insight, 0),
	}

	var sum model.MacroTotals
	for i := 0; i < reportWindowDays; i++ {
		d := start.AddDate(0, 0, i)
		day := WeekDay{Date: d.Format(dateLayout), Weekday: spanishWeekday(d.Weekday())}
		day.Totals = l.DailyProgress(day.Date)
		if meals, ok := l.DayMeals(day.Date); ok {
			day.Meals = meals
			day.HasData = !meals.IsEmpty()
		}
		if day.HasData {
			r.DaysWithData++
			sum.Calories += day.Totals.Calories
			sum.Protein += day.Totals.Protein
			sum.Fat += day.Totals.Fat
			sum.Carbs += day.Totals.Carbs
			if r.HasTargets && AdherenceWithin(float64(day.Totals.Calories), float64(targets.Calories), AdherenceTolerance) {
				day.Adherent = true
				r.AdherenceDays++
			}
		}
		r.Days = append(r.Days, day)
	}
	if r.DaysWithData > 0 {
		div := float64(r.DaysWithData)
		r.AvgCalories = float64(sum.Calories) / div
		r.AvgProtein = sum.Protein / div
		r.AvgFat = sum.Fat / div
		r.AvgCarbs = sum.Carbs / div
	}

	r.TopFoods, r.DistinctFoods = foodFrequencies(r.Days)
	r.Meals = slotBreakdowns(r.Days, r.AvgCalories)
	r.Weight = weightChange(l.WeightHistory(), r.FromDate, r.ToDate, r.User.BodyWeight)
	r.Analysis = analyzeWeek(r)
	return r
}

func foodFrequencies(days []WeekDay) ([]FoodFrequency, int) {
	byName := map[string]*FoodFrequency{}
	for _, d := range days {
		if !d.HasData {
			continue
		}
		for _, slot := range model.MealSlots {
			for _, e := range d.Meals.Entries(slot) {
				f, ok := byName[e.FoodName]
				if !ok {
					f = &FoodFrequency{Name: e.FoodName}
					byName[e.FoodName] = f
				}
				f.Count++
				f.TotalCalories += e.Calories
				f.TotalProtein += e.Protein
				f.TotalFat += e.Fat
				f.TotalCarbs += e.Carbs
			}
		}
	}
	items := make([]FoodFrequency, 0, len(byName))
	for _, f := range byName {
		n := float64(f.Count)
		f.AvgCalories = float64(f.TotalCalories) / n
		f.AvgProtein = f.TotalProtein / n
		f.AvgFat = f.TotalFat / n
		f.AvgCarbs = f.TotalCarbs / n
		items = append(items, *f)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	distinct := len(items)
	if len(items) > topFoodsLimit {
		items = items[:topFoodsLimit]
	}
	return items, distinct
}

func slotBreakdowns(days []WeekDay, avgDailyCalories float64) []SlotBreakdown {
	out := make([]SlotBreakdown, 0, len(model.MealSlots))
	for _, slot := range model.MealSlots {
		b := SlotBreakdown{Slot: slot}
		for _, d := range days {
			entries := d.Meals.Entries(slot)
			if len(entries) == 0 {
				continue
			}
			b.Days++
			addEntries(&b.Totals, entries)
		}
		if b.Days > 0 {
			n := float64(b.Days)
			b.AvgCalories = float64(b.Totals.Calories) / n
			b.AvgProtein = b.Totals.Protein / n
			b.AvgFat = b.Totals.Fat / n
			b.AvgCarbs = b.Totals.Carbs / n
		}
		if avgDailyCalories > 0 {
			b.SharePct = b.AvgCalories / avgDailyCalories * 100
		}
		out = append(out, b)
	}
	return out
}

// weightChange uses samples dated inside the window in chronological order,
// falling back to the current weight when none exist.
func weightChange(history []model.WeightSample, from, to string, current float64) WeightChange {
	samples := make([]model.WeightSample, 0)
	for _, s := range history {
		if s.Date >= from && s.Date <= to {
			samples = append(samples, s)
		}
	}
	if len(samples) == 0 {
		return WeightChange{Start: current, End: current}
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Date < samples[j].Date })
	first := samples[0].Weight
	last := samples[len(samples)-1].Weight
	return WeightChange{
		Start:       first,
		End:         last,
		Change:      roundTo(last-first, 2),
		Samples:     len(samples),
		FromHistory: true,
	}
}

func analyzeWeek(r *WeeklyReport) []Insight {
	if r.DaysWithData == 0 {
		return []Insight{{Topic: "data", Level: InsightInfo, Message: "Sin registros de comidas en los últimos 7 días: no hay datos para analizar."}}
	}
	out := make([]Insight, 0, 8)

	switch {
	case !r.HasTargets:
		out = append(out, Insight{Topic: "adherence", Level: InsightInfo, Message: "Sin fase activa: no hay objetivo calórico con el que comparar."})
	case r.AdherenceDays >= adherenceExcellentDays:
		out = append(out, Insight{Topic: "adherence", Level: InsightExcellent, Message: fmt.Sprintf("Adherencia excelente: %d/7 días dentro de ±5%% del objetivo.", r.AdherenceDays)})
	case r.AdherenceDays >= adherenceModerateDays:
		out = append(out, Insight{Topic: "adherence", Level: InsightModerate, Message: fmt.Sprintf("Adherencia moderada: %d/7 días dentro de ±5%% del objetivo.", r.AdherenceDays)})
	default:
		out = append(out, Insight{Topic: "adherence", Level: InsightPoor, Message: fmt.Sprintf("Adherencia baja: solo %d/7 días dentro de ±5%% del objetivo.", r.AdherenceDays)})
	}

	if r.HasTargets {
		diff := r.AvgCalories - float64(r.Targets.Calories)
		dev := math.Abs(diff)
		msg := fmt.Sprintf("Desviación calórica media de %+.0f kcal/día respecto a %d kcal.", diff, r.Targets.Calories)
		switch {
		case dev <= calorieDeviationGood:
			out = append(out, Insight{Topic: "calories", Level: InsightGood, Message: msg + " Muy cerca del objetivo."})
		case dev <= calorieDeviationOK:
			out = append(out, Insight{Topic: "calories", Level: InsightModerate, Message: msg + " Desviación aceptable, ajustar porciones."})
		default:
			out = append(out, Insight{Topic: "calories", Level: InsightPoor, Message: msg + " Desviación alta, revisar el plan."})
		}

		if r.Targets.Protein > 0 {
			pct := r.AvgProtein / r.Targets.Protein * 100
			if r.AvgProtein >= r.Targets.Protein*proteinSufficientRatio {
				out = append(out, Insight{Topic: "protein", Level: InsightGood, Message: fmt.Sprintf("Proteína suficiente: %.0f g/día (%.0f%% del objetivo).", r.AvgProtein, pct)})
			} else {
				out = append(out, Insight{Topic: "protein", Level: InsightPoor, Message: fmt.Sprintf("Proteína insuficiente: %.0f g/día (%.0f%% del objetivo, mínimo 90%%).", r.AvgProtein, pct)})
			}
		}
	}

	out = append(out, shareInsight("breakfast", "Desayuno", slotShare(r.Meals, model.SlotBreakfast), breakfastShareMin, breakfastShareMax))
	out = append(out, shareInsight("lunch", "Comida", slotShare(r.Meals, model.SlotLunch), lunchShareMin, lunchShareMax))
	out = append(out, weightInsight(r))
	out = append(out, foodInsights(r)...)
	return out
}

func slotShare(meals []SlotBreakdown, slot model.MealSlot) float64 {
	for _, m := range meals {
		if m.Slot == slot {
			return m.SharePct
		}
	}
	return 0
}

func shareInsight(topic, label string, share, lo, hi float64) Insight {
	switch {
	case share >= lo && share <= hi:
		return Insight{Topic: topic, Level: InsightGood, Message: fmt.Sprintf("%s: %.0f%% de las calorías diarias (ideal %.0f-%.0f%%).", label, share, lo, hi)}
	case share < lo:
		return Insight{Topic: topic, Level: InsightModerate, Message: fmt.Sprintf("%s: %.0f%% de las calorías diarias, por debajo del ideal (%.0f-%.0f%%).", label, share, lo, hi)}
	default:
		return Insight{Topic: topic, Level: InsightModerate, Message: fmt.Sprintf("%s: %.0f%% de las calorías diarias, por encima del ideal (%.0f-%.0f%%).", label, share, lo, hi)}
	}
}

func weightInsight(r *WeeklyReport) Insight {
	w := r.Weight
	if !w.FromHistory {
		return Insight{Topic: "weight", Level: InsightInfo, Message: "Sin registros de peso esta semana."}
	}
	if r.Phase == nil {
		return Insight{Topic: "weight", Level: InsightInfo, Message: fmt.Sprintf("Cambio de peso: %+.2f kg.", w.Change)}
	}
	if r.Phase.Phase >= 2 {
		lossPct := 0.0
		if w.Start > 0 {
			lossPct = -w.Change / w.Start * 100
		}
		switch {
		case w.Change < 0 && lossPct > maxWeeklyLossPct:
			return Insight{Topic: "weight", Level: InsightModerate, Message: fmt.Sprintf("Pérdida de %.2f kg (%.1f%% del peso), más rápida de lo recomendado (0.5-1%%/semana).", -w.Change, lossPct)}
		case w.Change < 0:
			return Insight{Topic: "weight", Level: InsightGood, Message: fmt.Sprintf("Pérdida de %.2f kg, acorde con la fase de déficit.", -w.Change)}
		case w.Change == 0:
			return Insight{Topic: "weight", Level: InsightModerate, Message: "Peso estable: se esperaba una pérdida en esta fase."}
		default:
			return Insight{Topic: "weight", Level: InsightPoor, Message: fmt.Sprintf("Aumento de %.2f kg: se esperaba una pérdida en esta fase.", w.Change)}
		}
	}
	if math.Abs(w.Change) <= stableWeightBandKg {
		return Insight{Topic: "weight", Level: InsightGood, Message: fmt.Sprintf("Peso estable (%+.2f kg), acorde con la fase de mantenimiento.", w.Change)}
	}
	return Insight{Topic: "weight", Level: InsightModerate, Message: fmt.Sprintf("Cambio de %+.2f kg en fase de mantenimiento (esperado ±%.1f kg).", w.Change, stableWeightBandKg)}
}

func foodInsights(r *WeeklyReport) []Insight {
	top := r.TopFoods
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) == 0 {
		return nil
	}
	totalOccurrences := 0
	for _, d := range r.Days {
		for _, slot := range model.MealSlots {
			totalOccurrences += len(d.Meals.Entries(slot))
		}
	}
	topOccurrences := 0
	proteinRich := 0
	for _, f := range top {
		topOccurrences += f.Count
		if f.AvgProtein >= proteinRichGrams || (f.AvgCalories > 0 && f.AvgProtein*4/f.AvgCalories >= proteinRichEnergyShare) {
			proteinRich++
		}
	}
	share := 0.0
	if totalOccurrences > 0 {
		share = float64(topOccurrences) / float64(totalOccurrences) * 100
	}

	var variety Insight
	switch {
	case share <= top3ShareVaried:
		variety = Insight{Topic: "variety", Level: InsightGood, Message: fmt.Sprintf("Buena variedad: %d alimentos distintos, el top 3 supone el %.0f%% de los registros.", r.DistinctFoods, share)}
	case share <= top3ShareLimited:
		variety = Insight{Topic: "variety", Level: InsightModerate, Message: fmt.Sprintf("Variedad moderada: %d alimentos distintos, el top 3 supone el %.0f%% de los registros.", r.DistinctFoods, share)}
	default:
		variety = Insight{Topic: "variety", Level: InsightPoor, Message: fmt.Sprintf("Variedad limitada: %d alimentos distintos, el top 3 supone el %.0f%% de los registros.", r.DistinctFoods, share)}
	}

	var quality Insight
	switch {
	case proteinRich >= 2:
		quality = Insight{Topic: "protein_quality", Level: InsightGood, Message: fmt.Sprintf("Calidad proteica alta: %d de los %d alimentos más frecuentes son ricos en proteína.", proteinRich, len(top))}
	case proteinRich == 1:
		quality = Insight{Topic: "protein_quality", Level: InsightModerate, Message: fmt.Sprintf("Calidad proteica media: %d de los %d alimentos más frecuentes es rico en proteína.", proteinRich, len(top))}
	default:
		quality = Insight{Topic: "protein_quality", Level: InsightPoor, Message: "Calidad proteica baja: ninguno de los alimentos más frecuentes es rico en proteína."}
	}
	return []Insight{variety, quality}
}

var spanishWeekdays = [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

func spanishWeekday(d time.Weekday) string {
	return spanishWeekdays[d]
}
