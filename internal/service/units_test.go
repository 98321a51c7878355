package service_test

import (
	"testing"

	"github.com/saadjs/coach-cli/internal/service"
)

func TestToGrams(t *testing.T) {
	t.Parallel()
	cases := []struct {
		amount float64
		unit   string
		want   float64
	}{
		{150, "", 150},
		{150, "g", 150},
		{0.25, "KG", 250},
		{4, "oz", 113.4},
		{1, "lb", 453.6},
		{500, "mg", 0.5},
	}
	for _, tc := range cases {
		got, err := service.ToGrams(tc.amount, tc.unit)
		if err != nil {
			t.Fatalf("ToGrams(%v, %q): %v", tc.amount, tc.unit, err)
		}
		if got != tc.want {
			t.Fatalf("ToGrams(%v, %q) = %v, want %v", tc.amount, tc.unit, got, tc.want)
		}
	}
}

func TestToGramsRejectsVolumeAndNonPositive(t *testing.T) {
	t.Parallel()
	if _, err := service.ToGrams(1, "cup"); err == nil {
		t.Fatalf("expected volume unit to be rejected")
	}
	if _, err := service.ToGrams(0, "g"); err == nil {
		t.Fatalf("expected non-positive quantity error")
	}
}
