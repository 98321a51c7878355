package service

import (
	"time"

	"github.com/saadjs/coach-cli/internal/model"
)

const (
	SubPhaseDescarga            = "descarga"
	SubPhaseMantenimiento       = "mantenimiento"
	SubPhaseInicioDeficit       = "inicio_deficit"
	SubPhaseDescansoDieta       = "descanso_dieta"
	SubPhaseContinuacionDeficit = "continuacion_deficit"
	SubPhasePulido              = "pulido"
	SubPhaseDescargaVerano      = "descarga_verano"
	SubPhaseDietaInversa        = "dieta_inversa"
)

// PhaseWindow covers the calendar days First..Last inclusive. A zero Last means
// the window has no upper bound.
type PhaseWindow struct {
	Phase    int
	SubPhase string
	First    civilDate
	Last     civilDate
}

type civilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d civilDate) isZero() bool { return d.Year == 0 }

// start returns midnight of the day in loc.
func (d civilDate) start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d civilDate) String() string {
	return d.start(time.UTC).Format("2006-01-02")
}

// ProgramWindows is ordered chronologically and non-overlapping.
var ProgramWindows = []PhaseWindow{
	{Phase: 1, SubPhase: SubPhaseDescarga, First: civilDate{2024, time.November, 4}, Last: civilDate{2024, time.November, 17}},
	{Phase: 1, SubPhase: SubPhaseMantenimiento, First: civilDate{2024, time.November, 18}, Last: civilDate{2024, time.December, 1}},
	{Phase: 2, SubPhase: SubPhaseInicioDeficit, First: civilDate{2024, time.December, 2}, Last: civilDate{2025, time.January, 31}},
	{Phase: 2, SubPhase: SubPhaseDescansoDieta, First: civilDate{2025, time.February, 1}, Last: civilDate{2025, time.February, 28}},
	{Phase: 2, SubPhase: SubPhaseContinuacionDeficit, First: civilDate{2025, time.March, 1}, Last: civilDate{2025, time.March, 30}},
	{Phase: 3, SubPhase: SubPhasePulido, First: civilDate{2025, time.April, 1}, Last: civilDate{2025, time.June, 15}},
	{Phase: 4, SubPhase: SubPhaseDescargaVerano, First: civilDate{2025, time.June, 16}, Last: civilDate{2025, time.June, 22}},
	{Phase: 4, SubPhase: SubPhaseDietaInversa, First: civilDate{2025, time.June, 23}},
}

// contains reports whether t falls in [First 00:00, Last+1 00:00) in t's location.
func (w PhaseWindow) contains(t time.Time) bool {
	loc := t.Location()
	if t.Before(w.First.start(loc)) {
		return false
	}
	if w.Last.isZero() {
		return true
	}
	end := w.Last.start(loc).AddDate(0, 0, 1)
	return t.Before(end)
}

func (w PhaseWindow) FirstDay() string { return w.First.String() }

// LastDay is empty for the open-ended window.
func (w PhaseWindow) LastDay() string {
	if w.Last.isZero() {
		return ""
	}
	return w.Last.String()
}

type phaseKey struct {
	phase int
	sub   string
}

type phaseMeta struct {
	name        string
	description string
}

var phaseMetadata = map[phaseKey]phaseMeta{
	{1, SubPhaseDescarga}:            {"FASE 1: Transición - Descarga", "Semanas 1-2: Descarga metabólica"},
	{1, SubPhaseMantenimiento}:       {"FASE 1: Búsqueda de Mantenimiento", "Semanas 3-4: Estableciendo mantenimiento calórico"},
	{2, SubPhaseInicioDeficit}:       {"FASE 2: Inicio del Déficit", "Dic-Ene: Déficit calórico moderado"},
	{2, SubPhaseDescansoDieta}:       {"FASE 2: Descanso de Dieta", "Febrero: Recuperación metabólica"},
	{2, SubPhaseContinuacionDeficit}: {"FASE 2: Continuación del Déficit", "Marzo: Déficit más profundo"},
	{3, SubPhasePulido}:              {"FASE 3: Pulido Final", "Abr-Jun: Máximo déficit para definición"},
	{4, SubPhaseDescargaVerano}:      {"FASE 4: Descarga de Verano", "Semana 1: Vuelta a mantenimiento"},
	{4, SubPhaseDietaInversa}:        {"FASE 4: Dieta Inversa", "Incremento calórico progresivo"},
}

var phaseNames = map[int]string{
	1: "FASE 1: Transición y Mantenimiento",
	2: "FASE 2: Definición Principal",
	3: "FASE 3: Pulido Final",
	4: "FASE 4: Mantenimiento de Verano",
}

// LookupPhase returns the canonical phase for a (phase, subPhase) pair.
func LookupPhase(phase int, subPhase string) (model.Phase, bool) {
	meta, ok := phaseMetadata[phaseKey{phase, subPhase}]
	if !ok {
		return model.Phase{}, false
	}
	return model.Phase{Phase: phase, SubPhase: subPhase, Name: meta.name, Description: meta.description}, true
}

func ValidOverride(o model.PhaseOverride) bool {
	_, ok := phaseMetadata[phaseKey{o.Phase, o.SubPhase}]
	return ok
}

// ResolvePhase maps now to a program phase. A non-nil override always wins and
// no date comparison is performed. Returns nil before the first window and in gaps.
func ResolvePhase(now time.Time, override *model.PhaseOverride) *model.Phase {
	if override != nil {
		if p, ok := LookupPhase(override.Phase, override.SubPhase); ok {
			return &p
		}
		return &model.Phase{Phase: override.Phase, SubPhase: override.SubPhase, Name: phaseNames[override.Phase]}
	}
	for _, w := range ProgramWindows {
		if w.contains(now) {
			p, _ := LookupPhase(w.Phase, w.SubPhase)
			return &p
		}
	}
	return nil
}

type CardioPlan struct {
	Sessions int    `json:"sessions"`
	Type     string `json:"type"`
}

type PhaseGuidance struct {
	Cardio   CardioPlan `json:"cardio"`
	Training string     `json:"training"`
	Focus    string     `json:"focus"`
}

var phaseGuidance = map[int]PhaseGuidance{
	1: {Cardio: CardioPlan{2, "LISS (30-40 min)"}, Training: "Intensidad Moderada (RIR 2-3)", Focus: "Adaptación y recuperación"},
	2: {Cardio: CardioPlan{3, "LISS (40-45 min)"}, Training: "Intensidad Alta (RIR 1-2)", Focus: "Mantener masa muscular en déficit"},
	3: {Cardio: CardioPlan{4, "LISS (45-50 min)"}, Training: "Intensidad Muy Alta (RIR 0-1)", Focus: "Máxima definición"},
	4: {Cardio: CardioPlan{2, "LISS (30 min)"}, Training: "Intensidad Moderada (RIR 2-3)", Focus: "Mantenimiento y disfrute"},
}

// PhaseContext returns training guidance for a phase. Unknown or nil phases get phase 1 guidance.
func PhaseContext(p *model.Phase) PhaseGuidance {
	if p != nil {
		if g, ok := phaseGuidance[p.Phase]; ok {
			return g
		}
	}
	return phaseGuidance[1]
}
