package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/chitledger/docs"
	"github.com/GlebRadaev/chitledger/internal/handlers/auth"
	"github.com/GlebRadaev/chitledger/internal/handlers/bidrequests"
	"github.com/GlebRadaev/chitledger/internal/handlers/contributions"
	"github.com/GlebRadaev/chitledger/internal/handlers/imports"
	"github.com/GlebRadaev/chitledger/internal/handlers/ledger"
	"github.com/GlebRadaev/chitledger/internal/handlers/reports"
	"github.com/GlebRadaev/chitledger/internal/handlers/schemes"
	"github.com/GlebRadaev/chitledger/internal/service"
	pkgauth "github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		SchemeService:       schemes.NewMockService(ctrl),
		LedgerService:       ledger.NewMockService(ctrl),
		ContributionService: contributions.NewMockService(ctrl),
		ReportService:       reports.NewMockService(ctrl),
		ImportService:       imports.NewMockService(ctrl),
		BidRequestService:   bidrequests.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockTokenValidator(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.LedgerHandler)
	assert.NotNil(t, h.BidRequestHandler)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	authHandler := NewMockAuthHandler(ctrl)
	schemeHandler := NewMockSchemeHandler(ctrl)
	ledgerHandler := NewMockLedgerHandler(ctrl)
	contributionHandler := NewMockContributionHandler(ctrl)
	reportHandler := NewMockReportHandler(ctrl)
	importHandler := NewMockImportHandler(ctrl)
	bidRequestHandler := NewMockBidRequestHandler(ctrl)
	validator := pkgauth.NewMockTokenValidator(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	authHandler.EXPECT().Me(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().ListSchemes(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().CreateScheme(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().GetScheme(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().JoinScheme(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().ListJoinRequests(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().ApproveJoinRequest(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	schemeHandler.EXPECT().RejectJoinRequest(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().GetLedger(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().GetBreakdown(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().GenerateRow(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().GetRow(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().UpdateRow(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().DeleteRow(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	ledgerHandler.EXPECT().ExportLedger(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().ListMine(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().ListScheme(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().MemberStatus(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().RequestVerification(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().ListVerificationRequests(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().ApproveVerification(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	contributionHandler.EXPECT().RejectVerification(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	reportHandler.EXPECT().Summary(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	importHandler.EXPECT().Import(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().Create(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().ListMine(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().Update(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	bidRequestHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	validator.EXPECT().ValidateToken("member-token").Return(&pkgauth.Claims{UserID: "u1", Role: "member"}, nil).AnyTimes()
	validator.EXPECT().ValidateToken("admin-token").Return(&pkgauth.Claims{UserID: "a1", Role: "admin"}, nil).AnyTimes()
	validator.EXPECT().ValidateToken(gomock.Any()).Return(nil, errors.New("invalid token")).AnyTimes()

	h := &Handlers{
		AuthHandler:         authHandler,
		SchemeHandler:       schemeHandler,
		LedgerHandler:       ledgerHandler,
		ContributionHandler: contributionHandler,
		ReportHandler:       reportHandler,
		ImportHandler:       importHandler,
		BidRequestHandler:   bidRequestHandler,
		validator:           validator,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{http.MethodPost, "/api/auth/register", "", http.StatusOK},
		{http.MethodPost, "/api/auth/login", "", http.StatusOK},
		{http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/me", "member-token", http.StatusOK},
		{http.MethodGet, "/api/schemes", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/schemes", "bogus", http.StatusUnauthorized},
		{http.MethodGet, "/api/schemes", "member-token", http.StatusOK},
		{http.MethodPost, "/api/schemes", "member-token", http.StatusForbidden},
		{http.MethodPost, "/api/schemes", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1", "member-token", http.StatusOK},
		{http.MethodPost, "/api/schemes/s1/join", "member-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1/breakdown?bid=10", "member-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1/generated", "member-token", http.StatusOK},
		{http.MethodPost, "/api/schemes/s1/generated", "member-token", http.StatusForbidden},
		{http.MethodPost, "/api/schemes/s1/generated", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1/generated/r1", "member-token", http.StatusOK},
		{http.MethodPut, "/api/schemes/s1/generated/r1", "member-token", http.StatusForbidden},
		{http.MethodPut, "/api/schemes/s1/generated/r1", "admin-token", http.StatusOK},
		{http.MethodDelete, "/api/schemes/s1/generated/r1", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1/generated/export", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/schemes/s1/generated/export", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/schemes/s1/contributions", "member-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1/contributions", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/schemes/s1/contributions", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/schemes/s1/members/u1/status", "member-token", http.StatusOK},
		{http.MethodGet, "/api/contributions", "member-token", http.StatusOK},
		{http.MethodGet, "/api/join-requests/pending", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/join-requests/pending", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/join-requests/s1/u2/approve", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/join-requests/s1/u2/reject", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/admin/reports", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/admin/reports", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/admin/import", "admin-token", http.StatusOK},
		{http.MethodPatch, "/api/contributions/c1/request-verification", "member-token", http.StatusOK},
		{http.MethodPatch, "/api/contributions/c1/request-verification", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/payments/verification-requests", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/admin/payments/verification-requests", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/payments/c1/approve", "member-token", http.StatusForbidden},
		{http.MethodPut, "/api/admin/payments/c1/approve", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/payments/c1/reject", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/schemes/s1/bid-requests", "member-token", http.StatusOK},
		{http.MethodGet, "/api/bid-requests", "member-token", http.StatusOK},
		{http.MethodGet, "/api/admin/bid-requests", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/admin/bid-requests", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/bid-requests/b1", "admin-token", http.StatusOK},
		{http.MethodDelete, "/api/admin/bid-requests/b1", "member-token", http.StatusForbidden},
		{http.MethodDelete, "/api/admin/bid-requests/b1", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/bid-requests/b1/approve", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/bid-requests/b1/reject", "admin-token", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
