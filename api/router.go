package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/api/auth"
	"github.com/complyware/vendorback/api/handlers"
	"github.com/complyware/vendorback/middleware"
	"github.com/complyware/vendorback/models"
)

func newRouter(d *handlers.Deps, jwtManager *auth.JWTManager, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AuthMiddleware(jwtManager))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	dashCache := handlers.NewDashboardCache(d.Cfg.ReportCacheTTL)

	r.Route("/v1", func(r chi.Router) {
		// Any signed-in account.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.UserRoleVendor))
			r.Get("/notifications", handlers.ListNotifications(d, lg))
			r.Get("/notifications/unread-count", handlers.UnreadCount(d, lg))
			r.Post("/notifications/{id}/read", handlers.MarkNotificationRead(d, lg))
			r.Get("/submissions/{id}", handlers.GetSubmission(d, lg))
		})

		// Vendor-facing submission lifecycle.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission("submissions", "write"))
			r.Post("/submissions", handlers.CreateSubmission(d, lg))
			r.Post("/submissions/{id}/documents", handlers.AddDocument(d, lg))
			r.Get("/my/submissions", handlers.ListVendorSubmissions(d, lg))
		})

		// Consultant review surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.UserRoleConsultant))
			r.Get("/submissions", handlers.ListSubmissions(d, lg))
			r.Post("/submissions/{id}/documents/{docIndex}/review", handlers.ReviewDocument(d, lg))
			r.Get("/submissions/{id}/documents/{docIndex}/download", handlers.DownloadArtifact(d, lg))
		})

		// Admin-only management and reporting.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.UserRoleAdmin))
			r.Get("/users", handlers.ListUsers(d, lg))
			r.Post("/users", handlers.CreateUser(d, lg))
			r.Patch("/users/{id}", handlers.UpdateUser(d, lg))
			r.Post("/users/{id}/consultant", handlers.AssignConsultant(d, lg))
			r.Get("/vendors/{id}/legacy-documents", handlers.ListLegacyDocuments(d, lg))

			r.Get("/activity", handlers.ListActivity(d, lg))

			r.Get("/reports/vendor-aging", handlers.VendorAgingReport(d, lg))
			r.Get("/reports/status-distribution", handlers.StatusDistributionReport(d, lg))
			r.Get("/reports/monthly-trend", handlers.MonthlyTrendReport(d, lg))
			r.Get("/reports/vendor-submissions", handlers.VendorSubmissionsReport(d, lg))
			r.Get("/dashboard", handlers.Dashboard(d, dashCache, lg))
		})
	})

	return r
}
