// ============================================================================
// internal/grading/summary.go
// Descriptive statistics over entered marks
// ============================================================================

package grading

import (
	"github.com/montanaflynn/stats"

	"gradecalc/internal/shared"
)

// SummarizeMarks computes descriptive statistics over the marks of the
// entered courses plus a count of each resolved letter grade. An empty list
// yields a zero summary.
func SummarizeMarks(courses []shared.Course) (shared.MarksSummary, error) {
	if len(courses) == 0 {
		return shared.MarksSummary{}, nil
	}

	marks := make([]float64, 0, len(courses))
	letterCounts := make(map[string]int32)

	for _, course := range courses {
		grade, err := GradeFor(course.Marks)
		if err != nil {
			return shared.MarksSummary{}, err
		}
		marks = append(marks, course.Marks)
		letterCounts[grade.Letter]++
	}

	mean, _ := stats.Mean(marks)
	median, _ := stats.Median(marks)
	stdDev, _ := stats.StandardDeviation(marks)
	min, _ := stats.Min(marks)
	max, _ := stats.Max(marks)

	return shared.MarksSummary{
		Mean:         mean,
		Median:       median,
		StdDev:       stdDev,
		Min:          min,
		Max:          max,
		LetterCounts: letterCounts,
	}, nil
}
