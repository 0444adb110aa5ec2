// ============================================================================
// internal/grading/scale.go
// Institutional grading scale and marks-to-grade lookup
// ============================================================================

package grading

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gradecalc/internal/shared"
)

// gradeBand is one row of the grading scale
type gradeBand struct {
	MinMark float64
	MaxMark float64
	Letter  string
	Point   float64
}

// gradeScale is the fixed institutional grading scale, ordered highest band
// first so a linear scan returns the first band whose floor is <= marks.
// Built once at startup and never mutated, so concurrent reads are safe.
var gradeScale = []gradeBand{
	{90, 100, shared.GradeAPlus, 4.00},
	{85, 89, shared.GradeA, 3.75},
	{80, 84, shared.GradeBPlus, 3.50},
	{75, 79, shared.GradeB, 3.25},
	{70, 74, shared.GradeCPlus, 3.00},
	{65, 69, shared.GradeC, 2.75},
	{60, 64, shared.GradeDPlus, 2.50},
	{50, 59, shared.GradeD, 2.25},
	{0, 49, shared.GradeF, 0.00},
}

// GradeFor converts marks to a letter grade and grade point using a floor
// lookup over the grading scale. Marks outside [0,100] are rejected.
func GradeFor(marks float64) (shared.GradeResult, error) {
	if marks < shared.MinMarks || marks > shared.MaxMarks {
		return shared.GradeResult{}, status.Error(codes.OutOfRange, "marks must be between 0 and 100")
	}

	for _, band := range gradeScale {
		if marks >= band.MinMark {
			return shared.GradeResult{Letter: band.Letter, Point: band.Point}, nil
		}
	}

	// Unreachable given the scale covers [0,100], kept as a safe fallback
	return shared.GradeResult{Letter: shared.GradeF, Point: 0.0}, nil
}

// bandForLetter returns the scale band for a letter grade
func bandForLetter(letter string) (gradeBand, bool) {
	for _, band := range gradeScale {
		if band.Letter == letter {
			return band, true
		}
	}
	return gradeBand{}, false
}

// IsValidLetter checks if a letter grade exists on the grading scale
func IsValidLetter(letter string) bool {
	_, ok := bandForLetter(letter)
	return ok
}
