package service_test

import (
	"testing"
	"time"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
)

func TestResolvePhaseCalendarBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		at    time.Time
		phase int
		sub   string
	}{
		{"before program", time.Date(2024, 11, 3, 23, 59, 59, 0, time.UTC), 0, ""},
		{"first day", time.Date(2024, 11, 4, 0, 0, 0, 0, time.UTC), 1, service.SubPhaseDescarga},
		{"last descarga minute", time.Date(2024, 11, 17, 23, 59, 0, 0, time.UTC), 1, service.SubPhaseDescarga},
		{"maintenance start", time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC), 1, service.SubPhaseMantenimiento},
		{"maintenance last day", time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC), 1, service.SubPhaseMantenimiento},
		{"deficit start", time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC), 2, service.SubPhaseInicioDeficit},
		{"deficit end of january", time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC), 2, service.SubPhaseInicioDeficit},
		{"diet break", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 2, service.SubPhaseDescansoDieta},
		{"diet break last day", time.Date(2025, 2, 28, 18, 0, 0, 0, time.UTC), 2, service.SubPhaseDescansoDieta},
		{"deficit continues", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 2, service.SubPhaseContinuacionDeficit},
		{"march 30 evening", time.Date(2025, 3, 30, 23, 0, 0, 0, time.UTC), 2, service.SubPhaseContinuacionDeficit},
		{"march 31 gap", time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), 0, ""},
		{"polish start", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 3, service.SubPhasePulido},
		{"polish last day", time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC), 3, service.SubPhasePulido},
		{"summer deload", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), 4, service.SubPhaseDescargaVerano},
		{"summer deload last day", time.Date(2025, 6, 22, 23, 59, 0, 0, time.UTC), 4, service.SubPhaseDescargaVerano},
		{"reverse diet", time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), 4, service.SubPhaseDietaInversa},
		{"reverse diet open ended", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), 4, service.SubPhaseDietaInversa},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.ResolvePhase(tc.at, nil)
			if tc.phase == 0 {
				if got != nil {
					t.Fatalf("expected no phase, got %+v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %d/%s, got nil", tc.phase, tc.sub)
			}
			if got.Phase != tc.phase || got.SubPhase != tc.sub {
				t.Fatalf("expected %d/%s, got %d/%s", tc.phase, tc.sub, got.Phase, got.SubPhase)
			}
			if got.Name == "" {
				t.Fatalf("expected a display name for %d/%s", got.Phase, got.SubPhase)
			}
		})
	}
}

func TestResolvePhaseUsesCallerLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+2", 2*60*60)
	// 2024-11-03 23:30 UTC is already 2024-11-04 in UTC+2.
	at := time.Date(2024, 11, 3, 23, 30, 0, 0, time.UTC).In(loc)
	got := service.ResolvePhase(at, nil)
	if got == nil || got.SubPhase != service.SubPhaseDescarga {
		t.Fatalf("expected descarga in caller location, got %+v", got)
	}
}

func TestResolvePhaseOverrideWins(t *testing.T) {
	t.Parallel()

	got := service.ResolvePhase(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), &model.PhaseOverride{Phase: 3, SubPhase: service.SubPhasePulido})
	if got == nil || got.Phase != 3 || got.SubPhase != service.SubPhasePulido {
		t.Fatalf("expected override pulido, got %+v", got)
	}
	if got.Name != "FASE 3: Pulido Final" {
		t.Fatalf("unexpected override name %q", got.Name)
	}

	odd := service.ResolvePhase(time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), &model.PhaseOverride{Phase: 2, SubPhase: "pulido"})
	if odd == nil || odd.Phase != 2 || odd.SubPhase != "pulido" {
		t.Fatalf("expected unknown pair to be returned as given, got %+v", odd)
	}
	if odd.Name != "FASE 2: Definición Principal" {
		t.Fatalf("expected phase-level name for unknown pair, got %q", odd.Name)
	}
	if odd.Description != "" {
		t.Fatalf("expected empty description for unknown pair, got %q", odd.Description)
	}
}

func TestValidOverride(t *testing.T) {
	t.Parallel()
	if !service.ValidOverride(model.PhaseOverride{Phase: 4, SubPhase: service.SubPhaseDietaInversa}) {
		t.Fatalf("expected 4/dieta_inversa to be valid")
	}
	if service.ValidOverride(model.PhaseOverride{Phase: 1, SubPhase: service.SubPhasePulido}) {
		t.Fatalf("expected 1/pulido to be invalid")
	}
}

func TestProgramWindowsAreOrderedAndDisjoint(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(service.ProgramWindows); i++ {
		prev, cur := service.ProgramWindows[i-1], service.ProgramWindows[i]
		if prev.LastDay() == "" {
			t.Fatalf("only the final window may be open-ended, %s is", prev.SubPhase)
		}
		if cur.FirstDay() <= prev.LastDay() {
			t.Fatalf("window %s starts %s before %s ends %s", cur.SubPhase, cur.FirstDay(), prev.SubPhase, prev.LastDay())
		}
	}
}

func TestPhaseContext(t *testing.T) {
	t.Parallel()

	g := service.PhaseContext(&model.Phase{Phase: 3})
	if g.Cardio.Sessions != 4 {
		t.Fatalf("expected 4 cardio sessions in phase 3, got %d", g.Cardio.Sessions)
	}
	fallback := service.PhaseContext(nil)
	if fallback != service.PhaseContext(&model.Phase{Phase: 1}) {
		t.Fatalf("expected nil phase to use phase 1 guidance")
	}
	if service.PhaseContext(&model.Phase{Phase: 9}) != fallback {
		t.Fatalf("expected unknown phase to use phase 1 guidance")
	}
}
