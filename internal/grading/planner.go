// ============================================================================
// internal/grading/planner.go
// Final exam score planning
// ============================================================================

package grading

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gradecalc/internal/shared"
)

// PlanFinalExam computes the percentage a student must score on the final
// exam to land in the target letter-grade band. The obtained marks are the
// points already earned out of (100 - finalWeight); finalWeight is the share
// of the course total carried by the final.
func PlanFinalExam(obtained, finalWeight float64, targetLetter string) (shared.FinalExamPlan, error) {
	if finalWeight <= 0 || finalWeight > 100 {
		return shared.FinalExamPlan{}, status.Error(codes.OutOfRange, "final weight must be between 0 (exclusive) and 100")
	}

	if obtained < 0 || obtained > shared.MaxMarks-finalWeight {
		return shared.FinalExamPlan{}, status.Errorf(codes.OutOfRange, "obtained marks must be between 0 and %.1f", shared.MaxMarks-finalWeight)
	}

	band, ok := bandForLetter(targetLetter)
	if !ok {
		return shared.FinalExamPlan{}, status.Errorf(codes.InvalidArgument, "unknown letter grade: %s", targetLetter)
	}

	// Percentage of the final needed to cross the band floor
	required := 0.0
	if needed := band.MinMark - obtained; needed > 0 {
		required = needed / finalWeight * 100
	}

	return shared.FinalExamPlan{
		TargetLetter:  band.Letter,
		TargetPoint:   band.Point,
		RequiredMarks: required,
		Achievable:    required <= 100,
	}, nil
}
