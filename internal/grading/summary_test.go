package grading

import (
	"math"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gradecalc/internal/shared"
)

func TestSummarizeMarks(t *testing.T) {
	t.Run("Empty List", func(t *testing.T) {
		summary, err := SummarizeMarks(nil)
		if err != nil {
			t.Fatalf("SummarizeMarks(nil) returned error: %v", err)
		}
		if summary.Mean != 0 || summary.LetterCounts != nil {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})

	t.Run("Descriptive Stats", func(t *testing.T) {
		courses := []shared.Course{
			{Title: "Programming in Java", Credits: 3, Marks: 88},
			{Title: "Data Structures", Credits: 3, Marks: 92},
			{Title: "Database Management", Credits: 3, Marks: 85},
			{Title: "Web Technologies", Credits: 3, Marks: 90},
		}

		summary, err := SummarizeMarks(courses)
		if err != nil {
			t.Fatalf("SummarizeMarks returned error: %v", err)
		}

		if math.Abs(summary.Mean-88.75) > epsilon {
			t.Errorf("expected mean 88.75, got %v", summary.Mean)
		}
		if math.Abs(summary.Median-89.0) > epsilon {
			t.Errorf("expected median 89.0, got %v", summary.Median)
		}
		if summary.Min != 85 || summary.Max != 92 {
			t.Errorf("expected min 85 / max 92, got %v / %v", summary.Min, summary.Max)
		}

		// 88 and 85 resolve to A; 92 and 90 to A+
		if summary.LetterCounts["A"] != 2 || summary.LetterCounts["A+"] != 2 {
			t.Errorf("unexpected letter counts: %v", summary.LetterCounts)
		}
	})

	t.Run("Invalid Marks", func(t *testing.T) {
		courses := []shared.Course{{Title: "Broken", Credits: 3, Marks: -5}}
		_, err := SummarizeMarks(courses)
		if status.Code(err) != codes.OutOfRange {
			t.Errorf("expected OutOfRange, got %v", status.Code(err))
		}
	})
}
