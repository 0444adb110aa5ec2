package grading

import (
	"testing"

	"gradecalc/internal/shared"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		cgpa     float64
		expected shared.StandingLabel
	}{
		{4.0, shared.StandingDeansList},
		{3.75, shared.StandingDeansList},
		{3.749999, shared.StandingExcellent},
		{3.50, shared.StandingExcellent},
		{3.499999, shared.StandingGood},
		{3.00, shared.StandingGood},
		{2.999999, shared.StandingSatisfactory},
		{2.50, shared.StandingSatisfactory},
		{2.499999, shared.StandingWarning},
		{2.0, shared.StandingWarning},
		{1.999999, shared.StandingProbation},
		{0.0, shared.StandingProbation},
	}

	for _, tc := range cases {
		if got := StatusFor(tc.cgpa); got != tc.expected {
			t.Errorf("StatusFor(%v): expected %q, got %q", tc.cgpa, tc.expected, got)
		}
	}
}

func TestStatusFor_Invalid(t *testing.T) {
	for _, cgpa := range []float64{-0.01, 4.01, 100} {
		if got := StatusFor(cgpa); got != shared.StandingInvalid {
			t.Errorf("StatusFor(%v): expected %q, got %q", cgpa, shared.StandingInvalid, got)
		}
	}
}

func TestStatusFor_Idempotent(t *testing.T) {
	if StatusFor(3.2) != StatusFor(3.2) {
		t.Error("expected identical results for identical input")
	}
}
