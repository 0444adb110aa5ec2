package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gradecalc/internal/gateway/util"
	"gradecalc/internal/grading"
	"gradecalc/internal/shared"
)

// CalcHandler exposes the grading core over HTTP for the calculator form.
// The core is stateless, so the handler carries no dependencies.
type CalcHandler struct{}

// GradeRequest mirrors the JSON input for POST /api/calc/grade
type GradeRequest struct {
	Marks float64 `json:"marks"`
}

// SemesterGPARequest mirrors the JSON input for POST /api/calc/semester-gpa
type SemesterGPARequest struct {
	Courses []shared.Course `json:"courses"`
}

// CGPARequest mirrors the JSON input for POST /api/calc/cgpa
type CGPARequest struct {
	PrevCGPA       float64 `json:"prev_cgpa"`
	PrevCredits    int32   `json:"prev_credits"`
	CurrentGPA     float64 `json:"current_gpa"`
	CurrentCredits int32   `json:"current_credits"`
}

// FinalExamRequest mirrors the JSON input for POST /api/calc/final-exam
type FinalExamRequest struct {
	Obtained     float64 `json:"obtained"`
	FinalWeight  float64 `json:"final_weight"`
	TargetLetter string  `json:"target_letter"`
}

// ConvertGrade handles POST /api/calc/grade
// Converts a single mark to a letter grade and grade point.
func (h *CalcHandler) ConvertGrade(w http.ResponseWriter, r *http.Request) {
	// 1. Decode Request
	var req GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Resolve Grade
	grade, err := grading.GradeFor(req.Marks)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	// 3. Respond
	response := map[string]interface{}{
		"success": true,
		"grade":   grade,
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// SemesterGPA handles POST /api/calc/semester-gpa
// Computes the credit-weighted GPA over the submitted course list.
func (h *CalcHandler) SemesterGPA(w http.ResponseWriter, r *http.Request) {
	// 1. Decode Request
	var req SemesterGPARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Aggregate
	gpa, err := grading.SemesterGPA(req.Courses)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	var totalCredits int32
	for _, course := range req.Courses {
		totalCredits += course.Credits
	}

	// 3. Respond
	response := map[string]interface{}{
		"success":       true,
		"semester_gpa":  gpa,
		"total_credits": totalCredits,
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// CumulativeCGPA handles POST /api/calc/cgpa
// Blends a prior cumulative record with the current semester GPA.
func (h *CalcHandler) CumulativeCGPA(w http.ResponseWriter, r *http.Request) {
	// 1. Decode Request
	var req CGPARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Blend
	cgpa, err := grading.CumulativeCGPA(req.PrevCGPA, req.PrevCredits, req.CurrentGPA, req.CurrentCredits)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	// 3. Respond
	response := map[string]interface{}{
		"success":         true,
		"cumulative_cgpa": cgpa,
		"standing":        grading.StatusFor(cgpa),
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// Standing handles GET /api/calc/standing
// Query Params: cgpa (required)
func (h *CalcHandler) Standing(w http.ResponseWriter, r *http.Request) {
	// 1. Extract Query Parameters
	cgpaStr := r.URL.Query().Get("cgpa")
	if cgpaStr == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "cgpa query parameter is required")
		return
	}

	cgpa, err := strconv.ParseFloat(cgpaStr, 64)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "cgpa must be a number")
		return
	}

	// 2. Classify and Respond
	response := map[string]interface{}{
		"success":  true,
		"cgpa":     cgpa,
		"standing": grading.StatusFor(cgpa),
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// FinalExamPlan handles POST /api/calc/final-exam
// Computes the final-exam score needed to reach a target grade.
func (h *CalcHandler) FinalExamPlan(w http.ResponseWriter, r *http.Request) {
	// 1. Decode Request
	var req FinalExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Plan
	plan, err := grading.PlanFinalExam(req.Obtained, req.FinalWeight, req.TargetLetter)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	// 3. Respond
	response := map[string]interface{}{
		"success": true,
		"plan":    plan,
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// Report handles POST /api/calc/report
// Runs the full pipeline for one calculator submission.
func (h *CalcHandler) Report(w http.ResponseWriter, r *http.Request) {
	// 1. Decode Request
	var req grading.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Calculate
	report, err := grading.CalculateReport(req)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	// 3. Respond
	response := map[string]interface{}{
		"success": true,
		"report":  report,
	}

	util.WriteJSON(w, http.StatusOK, response)
}
