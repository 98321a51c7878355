package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/coach-cli/internal/model"
)

const reportWidth = 60

var (
	heavyRule = strings.Repeat("═", reportWidth)
	lightRule = strings.Repeat("─", reportWidth)
)

type slotDisplay struct {
	name string
	icon string
}

var slotDisplays = map[model.MealSlot]slotDisplay{
	model.SlotBreakfast: {"Desayuno", "🌅"},
	model.SlotLunch:     {"Comida", "☀️"},
	model.SlotDinner:    {"Cena", "🌙"},
	model.SlotSnacks:    {"Snacks", "🍎"},
}

// SlotName is the Spanish display name of a slot, or the raw slot when unknown.
func SlotName(slot model.MealSlot) string {
	if d, ok := slotDisplays[slot]; ok {
		return d.name
	}
	return string(slot)
}

// SlotLabel prefixes SlotName with the slot's icon for text reports.
func SlotLabel(slot model.MealSlot) string {
	if d, ok := slotDisplays[slot]; ok {
		return d.icon + " " + d.name
	}
	return string(slot)
}

var insightMarkers = map[InsightLevel]string{
	InsightExcellent: "✅",
	InsightGood:      "✅",
	InsightModerate:  "⚠️",
	InsightPoor:      "❌",
	InsightInfo:      "ℹ️",
}

// RenderWeeklyReport lays the report out as plain text for reading or for a
// downstream reviewer. Section order and thresholds in the footer are fixed.
func RenderWeeklyReport(r *WeeklyReport) string {
	var b strings.Builder

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b, "📊 REPORTE SEMANAL - COACH DE DEFINICIÓN")
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintf(&b, "📅 Período: %s a %s\n", r.FromDate, r.ToDate)
	fmt.Fprintf(&b, "🕒 Generado: %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "👤 Usuario: %s\n", displayName(r.User.Name))
	fmt.Fprintf(&b, "⚖️ Peso actual: %.1f kg\n", r.User.BodyWeight)

	section(&b, "🎯 FASE ACTUAL")
	if r.Phase == nil {
		fmt.Fprintln(&b, "Sin fase activa para esta fecha.")
	} else {
		fmt.Fprintln(&b, r.Phase.Name)
		if r.Phase.Description != "" {
			fmt.Fprintln(&b, r.Phase.Description)
		}
		fmt.Fprintf(&b, "Subfase: %s\n", r.Phase.SubPhase)
		if r.Phase.SubPhase == SubPhaseDietaInversa {
			fmt.Fprintf(&b, "Semana de dieta inversa: %d\n", r.User.ReverseWeek)
		}
		g := PhaseContext(r.Phase)
		fmt.Fprintf(&b, "Cardio: %d sesiones %s\n", g.Cardio.Sessions, g.Cardio.Type)
		fmt.Fprintf(&b, "Entrenamiento: %s\n", g.Training)
		fmt.Fprintf(&b, "Enfoque: %s\n", g.Focus)
	}

	section(&b, "🎯 OBJETIVOS DIARIOS")
	if !r.HasTargets {
		fmt.Fprintln(&b, "Sin objetivos (fase no definida).")
	} else {
		fmt.Fprintf(&b, "Calorías: %d kcal\n", r.Targets.Calories)
		fmt.Fprintf(&b, "Proteína: %.0f g | Grasa: %.0f g | Carbohidratos: %.0f g\n", r.Targets.Protein, r.Targets.Fat, r.Targets.Carbs)
	}

	section(&b, "📈 RESUMEN SEMANAL")
	fmt.Fprintf(&b, "Días con registros: %d/7\n", r.DaysWithData)
	fmt.Fprintf(&b, "Promedio calorías: %.0f kcal/día\n", r.AvgCalories)
	fmt.Fprintf(&b, "Promedio proteína: %.1f g | grasa: %.1f g | carbohidratos: %.1f g\n", r.AvgProtein, r.AvgFat, r.AvgCarbs)
	if r.HasTargets {
		fmt.Fprintf(&b, "Diferencia vs objetivo: %+.0f kcal/día\n", r.AvgCalories-float64(r.Targets.Calories))
	}
	fmt.Fprintf(&b, "Adherencia (±5%%): %d/7 días\n", r.AdherenceDays)

	section(&b, "🍽️ DISTRIBUCIÓN POR COMIDA")
	for _, m := range r.Meals {
		if m.Days == 0 {
			fmt.Fprintf(&b, "%s: sin registros\n", SlotLabel(m.Slot))
			continue
		}
		fmt.Fprintf(&b, "%s (%d días): %.0f kcal | P %.1f g | G %.1f g | C %.1f g | %.0f%% del día\n",
			SlotLabel(m.Slot), m.Days, m.AvgCalories, m.AvgProtein, m.AvgFat, m.AvgCarbs, m.SharePct)
	}

	section(&b, "🥇 ALIMENTOS MÁS FRECUENTES")
	if len(r.TopFoods) == 0 {
		fmt.Fprintln(&b, "Sin alimentos registrados.")
	}
	for i, f := range r.TopFoods {
		fmt.Fprintf(&b, "%2d. %s x%d (media: %.0f kcal | P %.1f g | G %.1f g | C %.1f g)\n",
			i+1, f.Name, f.Count, f.AvgCalories, f.AvgProtein, f.AvgFat, f.AvgCarbs)
	}

	section(&b, "⚖️ EVOLUCIÓN DEL PESO")
	if r.Weight.FromHistory {
		fmt.Fprintf(&b, "Registros en el período: %d\n", r.Weight.Samples)
	} else {
		fmt.Fprintln(&b, "Sin registros en el período (se usa el peso actual).")
	}
	fmt.Fprintf(&b, "Inicio: %.1f kg | Fin: %.1f kg | Cambio: %+.2f kg\n", r.Weight.Start, r.Weight.End, r.Weight.Change)

	section(&b, "📋 DETALLE DIARIO")
	for _, d := range r.Days {
		fmt.Fprintf(&b, "%s %s: ", d.Weekday, d.Date)
		if !d.HasData {
			fmt.Fprintln(&b, "sin registros")
			continue
		}
		mark := "❌"
		if d.Adherent {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%d kcal | P %.1f g | G %.1f g | C %.1f g %s\n", d.Totals.Calories, d.Totals.Protein, d.Totals.Fat, d.Totals.Carbs, mark)
		for _, slot := range model.MealSlots {
			for _, e := range d.Meals.Entries(slot) {
				fmt.Fprintf(&b, "    %s: %s %.0f g (%d kcal)\n", SlotLabel(slot), e.FoodName, e.Quantity, e.Calories)
			}
		}
	}

	section(&b, "🤖 ANÁLISIS AUTOMÁTICO")
	for _, in := range r.Analysis {
		fmt.Fprintf(&b, "%s %s\n", insightMarkers[in.Level], in.Message)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b, "📚 REFERENCIAS DEL PROGRAMA")
	fmt.Fprintln(&b, heavyRule)
	for _, line := range referenceLines {
		fmt.Fprintln(&b, "• "+line)
	}
	fmt.Fprintln(&b, heavyRule)
	return b.String()
}

var referenceLines = []string{
	"Proteína: 1.8 g/kg (mantenimiento) | 2.2 g/kg (déficit)",
	"Grasa: 25% de las calorías (mantenimiento) | 0.9 g/kg (déficit)",
	"Carbohidratos: calorías restantes / 4",
	"Déficits: -400 kcal (Dic-Ene) | -550 kcal (Marzo) | -700 kcal (Pulido)",
	"Dieta inversa: +150 kcal por semana",
	"Adherencia: día dentro de ±5% del objetivo calórico",
	"Adherencia semanal: ≥6 excelente | ≥4 moderada | <4 baja",
	"Desviación calórica media: ≤50 kcal buena | ≤150 kcal moderada | >150 kcal alta",
	"Proteína suficiente: ≥90% del objetivo",
	"Desayuno ideal: 20-35% de las calorías | Comida ideal: 30-45%",
	"Pérdida de peso recomendada en déficit: 0.5-1% del peso corporal por semana",
}

func section(b *strings.Builder, title string) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, lightRule)
	fmt.Fprintln(b, title)
	fmt.Fprintln(b, lightRule)
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(sin nombre)"
	}
	return name
}
