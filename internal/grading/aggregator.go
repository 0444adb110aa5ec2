// ============================================================================
// internal/grading/aggregator.go
// Semester GPA and cumulative CGPA aggregation
// ============================================================================

package grading

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gradecalc/internal/shared"
)

// SemesterGPA computes the credit-weighted average grade point over a list of
// courses. An empty list is not an error and yields 0.0.
func SemesterGPA(courses []shared.Course) (float64, error) {
	if len(courses) == 0 {
		return 0.0, nil
	}

	var totalPoints float64
	var totalCredits int32

	for _, course := range courses {
		if !course.HasValidCredits() {
			return 0.0, status.Errorf(codes.InvalidArgument, "course %q: credits must be positive", course.Title)
		}

		grade, err := GradeFor(course.Marks)
		if err != nil {
			return 0.0, err
		}

		totalPoints += grade.Point * float64(course.Credits)
		totalCredits += course.Credits
	}

	if totalCredits <= 0 {
		return 0.0, nil
	}

	return totalPoints / float64(totalCredits), nil
}

// CumulativeCGPA blends a prior cumulative GPA with the current semester GPA,
// weighted by credits. A zero credit total yields 0.0.
//
// Formula: (prevCgpa * prevCredits + currentGpa * currentCredits) / totalCredits
//
// The current GPA is deliberately not range-checked here; it is trusted as the
// output of SemesterGPA, matching the reference behavior.
func CumulativeCGPA(prevCgpa float64, prevCredits int32, currentGpa float64, currentCredits int32) (float64, error) {
	if prevCredits < 0 || currentCredits < 0 {
		return 0.0, status.Error(codes.InvalidArgument, "credits cannot be negative")
	}

	if prevCgpa < shared.MinGPA || prevCgpa > shared.MaxGPA {
		return 0.0, status.Error(codes.OutOfRange, "CGPA must be between 0.0 and 4.0")
	}

	totalCredits := prevCredits + currentCredits
	if totalCredits == 0 {
		return 0.0, nil
	}

	totalPoints := prevCgpa*float64(prevCredits) + currentGpa*float64(currentCredits)
	return totalPoints / float64(totalCredits), nil
}
