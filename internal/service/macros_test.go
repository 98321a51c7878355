package service_test

import (
	"testing"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
)

func phaseOf(t *testing.T, n int, sub string) *model.Phase {
	t.Helper()
	p, ok := service.LookupPhase(n, sub)
	if !ok {
		t.Fatalf("unknown phase %d/%s", n, sub)
	}
	return &p
}

func TestComputeMacrosPerSubPhase(t *testing.T) {
	t.Parallel()

	base := model.UserProfile{Name: "Ana", BodyWeight: 80, MaintenanceCalories: 2500, ReverseWeek: 1}
	withRefs := base
	withRefs.EndHypertrophyCalories = 2800
	withRefs.EndDeficitCalories = 1900
	withRefs.ReverseWeek = 3

	cases := []struct {
		name    string
		profile model.UserProfile
		phase   int
		sub     string
		want    model.MacroTargets
	}{
		{"descarga falls back to maintenance", base, 1, service.SubPhaseDescarga, model.MacroTargets{Calories: 2500, Protein: 144, Fat: 69, Carbs: 325}},
		{"descarga uses end of hypertrophy", withRefs, 1, service.SubPhaseDescarga, model.MacroTargets{Calories: 2800, Protein: 144, Fat: 78, Carbs: 381}},
		{"mantenimiento", base, 1, service.SubPhaseMantenimiento, model.MacroTargets{Calories: 2500, Protein: 144, Fat: 69, Carbs: 325}},
		{"inicio_deficit", base, 2, service.SubPhaseInicioDeficit, model.MacroTargets{Calories: 2100, Protein: 176, Fat: 72, Carbs: 187}},
		{"descanso_dieta", base, 2, service.SubPhaseDescansoDieta, model.MacroTargets{Calories: 2500, Protein: 144, Fat: 69, Carbs: 325}},
		{"continuacion rounds half up", base, 2, service.SubPhaseContinuacionDeficit, model.MacroTargets{Calories: 1950, Protein: 176, Fat: 72, Carbs: 150}},
		{"pulido", base, 3, service.SubPhasePulido, model.MacroTargets{Calories: 1800, Protein: 176, Fat: 72, Carbs: 112}},
		{"descarga_verano", base, 4, service.SubPhaseDescargaVerano, model.MacroTargets{Calories: 2500, Protein: 144, Fat: 69, Carbs: 325}},
		{"dieta_inversa week 1 fallback", base, 4, service.SubPhaseDietaInversa, model.MacroTargets{Calories: 1950, Protein: 144, Fat: 54, Carbs: 222}},
		{"dieta_inversa week 3", withRefs, 4, service.SubPhaseDietaInversa, model.MacroTargets{Calories: 2350, Protein: 144, Fat: 65, Carbs: 297}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := service.ComputeMacros(tc.profile, phaseOf(t, tc.phase, tc.sub))
			if !ok {
				t.Fatalf("expected targets for %d/%s", tc.phase, tc.sub)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestComputeMacrosReverseWeekBelowOneTreatedAsOne(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{BodyWeight: 80, MaintenanceCalories: 2500, ReverseWeek: 0}
	got, _ := service.ComputeMacros(p, phaseOf(t, 4, service.SubPhaseDietaInversa))
	if got.Calories != 1950 {
		t.Fatalf("expected week 1 calories 1950, got %d", got.Calories)
	}
}

func TestComputeMacrosNilPhase(t *testing.T) {
	t.Parallel()
	got, ok := service.ComputeMacros(model.UserProfile{BodyWeight: 80, MaintenanceCalories: 2500}, nil)
	if ok {
		t.Fatalf("expected not ready for nil phase")
	}
	if got != (model.MacroTargets{}) {
		t.Fatalf("expected zero targets, got %+v", got)
	}
}

func TestComputeMacrosUnknownPairUsesMaintenance(t *testing.T) {
	t.Parallel()
	got, ok := service.ComputeMacros(model.UserProfile{BodyWeight: 80, MaintenanceCalories: 2500}, &model.Phase{Phase: 2, SubPhase: "pulido"})
	if !ok {
		t.Fatalf("expected ok for non-nil phase")
	}
	if got != (model.MacroTargets{Calories: 2500}) {
		t.Fatalf("expected maintenance calories with zero macros, got %+v", got)
	}
}

func TestComputeMacrosClampsNegatives(t *testing.T) {
	t.Parallel()

	heavy := model.UserProfile{BodyWeight: 200, MaintenanceCalories: 1000}
	got, _ := service.ComputeMacros(heavy, phaseOf(t, 3, service.SubPhasePulido))
	if got.Calories != 300 || got.Carbs != 0 {
		t.Fatalf("expected 300 kcal with carbs clamped to 0, got %+v", got)
	}
	if got.Protein != 440 || got.Fat != 180 {
		t.Fatalf("expected protein and fat untouched by the clamp, got %+v", got)
	}

	tiny := model.UserProfile{BodyWeight: 60, MaintenanceCalories: 500}
	got, _ = service.ComputeMacros(tiny, phaseOf(t, 3, service.SubPhasePulido))
	if got.Calories != 0 {
		t.Fatalf("expected calories clamped to 0, got %d", got.Calories)
	}
}

func TestComputeMacrosNeverNegative(t *testing.T) {
	t.Parallel()

	profiles := []model.UserProfile{
		{BodyWeight: 0.5, MaintenanceCalories: 1},
		{BodyWeight: 45, MaintenanceCalories: 1200, ReverseWeek: 1},
		{BodyWeight: 80, MaintenanceCalories: 2500, EndDeficitCalories: 1, ReverseWeek: 40},
		{BodyWeight: 150, MaintenanceCalories: 1500, EndHypertrophyCalories: 100},
	}
	for _, p := range profiles {
		for _, w := range service.ProgramWindows {
			got, ok := service.ComputeMacros(p, phaseOf(t, w.Phase, w.SubPhase))
			if !ok {
				t.Fatalf("expected ok for %d/%s", w.Phase, w.SubPhase)
			}
			if got.Calories < 0 || got.Protein < 0 || got.Fat < 0 || got.Carbs < 0 {
				t.Fatalf("negative target %+v for profile %+v in %d/%s", got, p, w.Phase, w.SubPhase)
			}
		}
	}
}
