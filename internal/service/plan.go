package service

import (
	"fmt"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

type PlanSubPhase struct {
	SubPhase    string             `json:"sub_phase"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	FirstDay    string             `json:"first_day"`
	LastDay     string             `json:"last_day,omitempty"`
	Duration    string             `json:"duration"`
	Targets     model.MacroTargets `json:"targets"`
	Current     bool               `json:"current"`
}

type PlanPhase struct {
	Phase     int            `json:"phase"`
	Name      string         `json:"name"`
	Guidance  PhaseGuidance  `json:"guidance"`
	SubPhases []PlanSubPhase `json:"sub_phases"`
}

// ProgramPlan lists every phase window with the targets the profile would get in it.
// current marks the active sub-phase and may be nil.
func ProgramPlan(profile model.UserProfile, current *model.Phase) []PlanPhase {
	out := make([]PlanPhase, 0, len(phaseNames))
	index := map[int]int{}
	for _, w := range ProgramWindows {
		i, ok := index[w.Phase]
		if !ok {
			p := &model.Phase{Phase: w.Phase}
			out = append(out, PlanPhase{Phase: w.Phase, Name: phaseNames[w.Phase], Guidance: PhaseContext(p)})
			i = len(out) - 1
			index[w.Phase] = i
		}
		phase, _ := LookupPhase(w.Phase, w.SubPhase)
		targets, _ := ComputeMacros(profile, &phase)
		out[i].SubPhases = append(out[i].SubPhases, PlanSubPhase{
			SubPhase:    w.SubPhase,
			Name:        phase.Name,
			Description: phase.Description,
			FirstDay:    w.FirstDay(),
			LastDay:     w.LastDay(),
			Duration:    windowDuration(w),
			Targets:     targets,
			Current:     current != nil && current.Phase == w.Phase && current.SubPhase == w.SubPhase,
		})
	}
	return out
}

var spanishMonths = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

func (d civilDate) label() string {
	return fmt.Sprintf("%d %s %d", d.Day, spanishMonths[d.Month-1], d.Year)
}

// windowDuration renders "4 Nov 2024 - 17 Nov 2024 (2 semanas)".
func windowDuration(w PhaseWindow) string {
	if w.Last.isZero() {
		return fmt.Sprintf("desde %s (semanal, +%d kcal)", w.First.label(), reverseDietStepKcal)
	}
	days := int(w.Last.start(time.UTC).Sub(w.First.start(time.UTC)).Hours()/24) + 1
	weeks := int(roundHalfUp(float64(days) / 7))
	unit := "semanas"
	if weeks == 1 {
		unit = "semana"
	}
	return fmt.Sprintf("%s - %s (%d %s)", w.First.label(), w.Last.label(), weeks, unit)
}
