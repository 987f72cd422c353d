package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/chitledger/docs"
	authhandlers "github.com/GlebRadaev/chitledger/internal/handlers/auth"
	bidrequesthandlers "github.com/GlebRadaev/chitledger/internal/handlers/bidrequests"
	contributionhandlers "github.com/GlebRadaev/chitledger/internal/handlers/contributions"
	importhandlers "github.com/GlebRadaev/chitledger/internal/handlers/imports"
	ledgerhandlers "github.com/GlebRadaev/chitledger/internal/handlers/ledger"
	reporthandlers "github.com/GlebRadaev/chitledger/internal/handlers/reports"
	schemehandlers "github.com/GlebRadaev/chitledger/internal/handlers/schemes"
	"github.com/GlebRadaev/chitledger/internal/metrics"
	"github.com/GlebRadaev/chitledger/internal/service"
	"github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type SchemeHandler interface {
	ListSchemes(w http.ResponseWriter, r *http.Request)
	CreateScheme(w http.ResponseWriter, r *http.Request)
	GetScheme(w http.ResponseWriter, r *http.Request)
	JoinScheme(w http.ResponseWriter, r *http.Request)
	ListJoinRequests(w http.ResponseWriter, r *http.Request)
	ApproveJoinRequest(w http.ResponseWriter, r *http.Request)
	RejectJoinRequest(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	GenerateRow(w http.ResponseWriter, r *http.Request)
	GetRow(w http.ResponseWriter, r *http.Request)
	UpdateRow(w http.ResponseWriter, r *http.Request)
	DeleteRow(w http.ResponseWriter, r *http.Request)
	ExportLedger(w http.ResponseWriter, r *http.Request)
}

type ContributionHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListScheme(w http.ResponseWriter, r *http.Request)
	MemberStatus(w http.ResponseWriter, r *http.Request)
	RequestVerification(w http.ResponseWriter, r *http.Request)
	ListVerificationRequests(w http.ResponseWriter, r *http.Request)
	ApproveVerification(w http.ResponseWriter, r *http.Request)
	RejectVerification(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type ImportHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
}

type BidRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	SchemeHandler       SchemeHandler
	LedgerHandler       LedgerHandler
	ContributionHandler ContributionHandler
	ReportHandler       ReportHandler
	ImportHandler       ImportHandler
	BidRequestHandler   BidRequestHandler

	validator auth.TokenValidator
}

func New(s *service.Services, validator auth.TokenValidator) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		SchemeHandler:       schemehandlers.New(s.SchemeService),
		LedgerHandler:       ledgerhandlers.New(s.LedgerService),
		ContributionHandler: contributionhandlers.New(s.ContributionService),
		ReportHandler:       reporthandlers.New(s.ReportService),
		ImportHandler:       importhandlers.New(s.ImportService),
		BidRequestHandler:   bidrequesthandlers.New(s.BidRequestService),
		validator:           validator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	authenticated := auth.Middleware(h.validator)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.With(authenticated).Get("/me", h.AuthHandler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Route("/schemes", func(r chi.Router) {
				r.Get("/", h.SchemeHandler.ListSchemes)
				r.With(auth.RequireAdmin).Post("/", h.SchemeHandler.CreateScheme)

				r.Route("/{schemeID}", func(r chi.Router) {
					r.Get("/", h.SchemeHandler.GetScheme)
					r.Post("/join", h.SchemeHandler.JoinScheme)
					r.Get("/breakdown", h.LedgerHandler.GetBreakdown)

					r.Route("/generated", func(r chi.Router) {
						r.Get("/", h.LedgerHandler.GetLedger)
						r.Get("/{rowID}", h.LedgerHandler.GetRow)

						r.Group(func(r chi.Router) {
							r.Use(auth.RequireAdmin)
							r.Post("/", h.LedgerHandler.GenerateRow)
							r.Get("/export", h.LedgerHandler.ExportLedger)
							r.Put("/{rowID}", h.LedgerHandler.UpdateRow)
							r.Delete("/{rowID}", h.LedgerHandler.DeleteRow)
						})
					})

					r.Post("/contributions", h.ContributionHandler.Pay)
					r.With(auth.RequireAdmin).Get("/contributions", h.ContributionHandler.ListScheme)
					r.Get("/members/{userID}/status", h.ContributionHandler.MemberStatus)
					r.Post("/bid-requests", h.BidRequestHandler.Create)
				})
			})

			r.Get("/contributions", h.ContributionHandler.ListMine)
			r.Patch("/contributions/{contributionID}/request-verification", h.ContributionHandler.RequestVerification)
			r.Get("/bid-requests", h.BidRequestHandler.ListMine)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Get("/join-requests/pending", h.SchemeHandler.ListJoinRequests)
				r.Put("/join-requests/{schemeID}/{userID}/approve", h.SchemeHandler.ApproveJoinRequest)
				r.Put("/join-requests/{schemeID}/{userID}/reject", h.SchemeHandler.RejectJoinRequest)
				r.Get("/admin/reports", h.ReportHandler.Summary)
				r.Post("/admin/import", h.ImportHandler.Import)

				r.Get("/admin/payments/verification-requests", h.ContributionHandler.ListVerificationRequests)
				r.Put("/admin/payments/{contributionID}/approve", h.ContributionHandler.ApproveVerification)
				r.Put("/admin/payments/{contributionID}/reject", h.ContributionHandler.RejectVerification)

				r.Route("/admin/bid-requests", func(r chi.Router) {
					r.Get("/", h.BidRequestHandler.List)
					r.Put("/{id}", h.BidRequestHandler.Update)
					r.Delete("/{id}", h.BidRequestHandler.Delete)
					r.Put("/{id}/approve", h.BidRequestHandler.Approve)
					r.Put("/{id}/reject", h.BidRequestHandler.Reject)
				})
			})
		})
	})

	return r
}
