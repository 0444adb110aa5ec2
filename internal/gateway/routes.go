package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gradecalc/internal/gateway/handlers"
	"gradecalc/internal/gateway/util"
	"gradecalc/internal/shared"
)

// SetupRoutes configures the Chi router, middleware, and route handlers.
func SetupRoutes(cfg *shared.ServiceConfig) *chi.Mux {
	r := chi.NewRouter()

	// 1. Global Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// CORS Configuration (the calculator form runs in the browser)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	// 2. Initialize Handlers
	calcHandler := &handlers.CalcHandler{}

	// 3. Define Routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			util.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"service": cfg.ServiceName,
			})
		})

		r.Route("/calc", func(r chi.Router) {
			r.Post("/grade", calcHandler.ConvertGrade)
			r.Post("/semester-gpa", calcHandler.SemesterGPA)
			r.Post("/cgpa", calcHandler.CumulativeCGPA)
			r.Get("/standing", calcHandler.Standing)
			r.Post("/final-exam", calcHandler.FinalExamPlan)
			r.Post("/report", calcHandler.Report)
		})
	})

	return r
}
