package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub-dev/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Master       MasterHandler
	Notification NotificationHandler
	Payroll      PayrollHandler
	Report       ReportHandler
	User         UserHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, allowedOrigins []string, uploadsDir string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	// Stored leave attachments are served statically.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/", h.Attendance.ListMine)
				r.Get("/{date}", h.Attendance.GetByDate)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.ListMine)
				r.Post("/{id}/cancel", h.Leave.Cancel)
				r.Post("/{id}/document", h.Leave.Attach)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/pending", h.Leave.ListPending)
					r.Post("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/{id}/read", h.Notification.MarkRead)
				r.Post("/read-all", h.Notification.MarkAllRead)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/my", h.Payroll.MyPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/generate", h.Payroll.Generate)
					r.Post("/{id}/process", h.Payroll.MarkProcessed)
					r.Post("/{id}/pay", h.Payroll.MarkPaid)
					r.Get("/", h.Payroll.ListByPeriod)
				})
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", h.Master.ListBranches)
				r.Get("/{id}", h.Master.GetBranch)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateBranch)
					r.Put("/{id}", h.Master.UpdateBranch)
					r.Delete("/{id}", h.Master.DeleteBranch)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Master.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateHoliday)
					r.Delete("/{id}", h.Master.DeleteHoliday)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Post("/", h.User.Create)
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.Get)
				r.Delete("/{id}", h.User.Deactivate)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/attendance", h.Report.Summary)
				r.Get("/attendance/export", h.Report.Export)
				r.Get("/payroll/export", h.Payroll.Export)
			})
		})
	})

	return r
}
