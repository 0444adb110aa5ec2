// ============================================================================
// internal/grading/service.go
// Full report pipeline: grades -> semester GPA -> CGPA -> standing
// ============================================================================

package grading

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gradecalc/internal/shared"
)

// ReportRequest carries one full calculator submission
type ReportRequest struct {
	Courses     []shared.Course `json:"courses"`
	PrevCGPA    float64         `json:"prev_cgpa"`
	PrevCredits int32           `json:"prev_credits"`
}

// CalculateReport runs the whole pipeline for one form submission: resolve
// each course grade, compute the semester GPA, blend with the prior record
// into a cumulative CGPA, classify standing, and summarize the marks.
// With no prior credits the cumulative CGPA equals the semester GPA.
func CalculateReport(req ReportRequest) (shared.Report, error) {
	if len(req.Courses) == 0 {
		return shared.Report{}, status.Error(codes.InvalidArgument, "no courses provided")
	}

	courseGrades := make([]shared.CourseGrade, 0, len(req.Courses))
	var totalCredits int32

	for _, course := range req.Courses {
		if !course.HasValidCredits() {
			return shared.Report{}, status.Errorf(codes.InvalidArgument, "course %q: credits must be positive", course.Title)
		}

		grade, err := GradeFor(course.Marks)
		if err != nil {
			return shared.Report{}, err
		}

		courseGrades = append(courseGrades, shared.CourseGrade{
			Title:   course.Title,
			Credits: course.Credits,
			Marks:   course.Marks,
			Letter:  grade.Letter,
			Point:   grade.Point,
		})
		totalCredits += course.Credits
	}

	semesterGPA, err := SemesterGPA(req.Courses)
	if err != nil {
		return shared.Report{}, err
	}

	cumulativeCGPA, err := CumulativeCGPA(req.PrevCGPA, req.PrevCredits, semesterGPA, totalCredits)
	if err != nil {
		return shared.Report{}, err
	}

	summary, err := SummarizeMarks(req.Courses)
	if err != nil {
		return shared.Report{}, err
	}

	return shared.Report{
		Courses: courseGrades,
		Aggregate: shared.AggregateResult{
			SemesterGPA:    semesterGPA,
			CumulativeCGPA: cumulativeCGPA,
			TotalCredits:   totalCredits,
		},
		Standing: StatusFor(cumulativeCGPA),
		Summary:  summary,
	}, nil
}
