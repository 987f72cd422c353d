package contributions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/contributionservice"
	"github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ContributionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, body string, session *auth.Session, kv ...string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	if session != nil {
		ctx = auth.WithSession(ctx, *session)
	}
	return r.WithContext(ctx)
}

var member = &auth.Session{UserID: "u1", Role: domain.RoleMember}

func TestPay(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Pending contribution created",
			body: `{"amount":5000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Pay(gomock.Any(), "s1", "u1", "5000").Return(&domain.Contribution{
					ID: "c1", SchemeID: "s1", UserID: "u1", Amount: 5000, Status: domain.ContributionPending, PaymentRef: "ref-1",
				}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Zero amount",
			body: `{"amount":"0"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Pay(gomock.Any(), "s1", "u1", "0").Return(nil, contributionservice.ErrAmountRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not a number",
			body: `{"amount":"abc"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Pay(gomock.Any(), "s1", "u1", "abc").Return(nil, chit.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Negative amount",
			body: `{"amount":-10}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Pay(gomock.Any(), "s1", "u1", "-10").Return(nil, chit.ErrNegativeAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Not a member",
			body: `{"amount":5000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Pay(gomock.Any(), "s1", "u1", "5000").Return(nil, contributionservice.ErrNotMember)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.Pay(rr, request(http.MethodPost, "/api/schemes/s1/contributions", tt.body, member, "schemeID", "s1"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListMine(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListMine(gomock.Any(), "u1").Return([]domain.Contribution{{ID: "c1", UserID: "u1", Amount: 5000}}, nil)

	rr := httptest.NewRecorder()
	handler.ListMine(rr, request(http.MethodGet, "/api/contributions", "", member))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.ContributionDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "c1", resp[0].ID)
}

func TestListScheme(t *testing.T) {
	t.Run("Empty list", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListScheme(gomock.Any(), "s1").Return([]domain.Contribution{}, nil)

		rr := httptest.NewRecorder()
		handler.ListScheme(rr, request(http.MethodGet, "/api/schemes/s1/contributions", "", member, "schemeID", "s1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListScheme(gomock.Any(), "s1").Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		handler.ListScheme(rr, request(http.MethodGet, "/api/schemes/s1/contributions", "", member, "schemeID", "s1"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMemberStatus(t *testing.T) {
	status := &contributionservice.MemberStatus{
		Member:       domain.SchemeMember{SchemeID: "s1", UserID: "u2", Name: "Ravi", Approved: true},
		MemberStatus: chit.MemberStatus{MonthsPaid: 3, MonthsPending: chit.MonthsPending(nil, 3), AmountPaid: 15000},
	}

	t.Run("Admin reads another member", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MemberStatus(gomock.Any(), "s1", "u2").Return(status, nil)

		admin := &auth.Session{UserID: "a1", Role: domain.RoleAdmin}
		rr := httptest.NewRecorder()
		handler.MemberStatus(rr, request(http.MethodGet, "/api/schemes/s1/members/u2/status", "", admin, "schemeID", "s1", "userID", "u2"))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 3.0, resp["monthsPaid"])
		assert.Nil(t, resp["monthsPending"])
	})

	t.Run("Member reads self", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MemberStatus(gomock.Any(), "s1", "u1").Return(status, nil)

		rr := httptest.NewRecorder()
		handler.MemberStatus(rr, request(http.MethodGet, "/api/schemes/s1/members/u1/status", "", member, "schemeID", "s1", "userID", "u1"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Member reads someone else", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.MemberStatus(rr, request(http.MethodGet, "/api/schemes/s1/members/u2/status", "", member, "schemeID", "s1", "userID", "u2"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Scheme not found", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().MemberStatus(gomock.Any(), "s9", "u1").Return(nil, contributionservice.ErrSchemeNotFound)

		rr := httptest.NewRecorder()
		handler.MemberStatus(rr, request(http.MethodGet, "/api/schemes/s9/members/u1/status", "", member, "schemeID", "s9", "userID", "u1"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRequestVerification(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Request filed",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestVerification(gomock.Any(), "c1", "u1").Return(&domain.Contribution{
					ID: "c1", UserID: "u1", Status: domain.ContributionPending, Verification: domain.VerificationRequested,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the payer",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestVerification(gomock.Any(), "c1", "u1").Return(nil, contributionservice.ErrContributionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already settled",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestVerification(gomock.Any(), "c1", "u1").Return(nil, contributionservice.ErrAlreadySettled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Already requested",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestVerification(gomock.Any(), "c1", "u1").Return(nil, contributionservice.ErrVerificationRequested)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.RequestVerification(rr, request(http.MethodPatch, "/api/contributions/c1/request-verification", "", member, "contributionID", "c1"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}

	t.Run("No session", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.RequestVerification(rr, request(http.MethodPatch, "/api/contributions/c1/request-verification", "", nil, "contributionID", "c1"))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListVerificationRequests(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListVerificationRequests(gomock.Any()).Return([]domain.Contribution{{
		ID: "c1", UserID: "u1", UserName: "Ravi", SchemeID: "s1", SchemeName: "Gold 10",
		Status: domain.ContributionPending, Verification: domain.VerificationRequested,
	}}, nil)

	rr := httptest.NewRecorder()
	handler.ListVerificationRequests(rr, request(http.MethodGet, "/api/admin/payments/verification-requests", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.ContributionDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ravi", resp[0].UserName)
	assert.Equal(t, "Gold 10", resp[0].SchemeName)
	assert.Equal(t, domain.VerificationRequested, resp[0].Verification)
}

func TestApproveVerification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Approved", expectedCode: http.StatusOK},
		{name: "Unknown contribution", err: contributionservice.ErrContributionNotFound, expectedCode: http.StatusNotFound},
		{name: "Nothing requested", err: contributionservice.ErrNoVerificationRequest, expectedCode: http.StatusConflict},
		{name: "Store failure", err: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			service.EXPECT().ApproveVerification(gomock.Any(), "c1").Return(tt.err)

			rr := httptest.NewRecorder()
			handler.ApproveVerification(rr, request(http.MethodPut, "/api/admin/payments/c1/approve", "", nil, "contributionID", "c1"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRejectVerification(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Rejected with a reason",
			body: `{"reason":"No matching transfer"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RejectVerification(gomock.Any(), "c1", "No matching transfer").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Rejected without a body",
			prepareMock: func(service *MockService) {
				service.EXPECT().RejectVerification(gomock.Any(), "c1", "").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reason too long",
			body: `{"reason":"x"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RejectVerification(gomock.Any(), "c1", "x").Return(contributionservice.ErrReasonTooLong)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Nothing requested",
			prepareMock: func(service *MockService) {
				service.EXPECT().RejectVerification(gomock.Any(), "c1", "").Return(contributionservice.ErrNoVerificationRequest)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.RejectVerification(rr, request(http.MethodPut, "/api/admin/payments/c1/reject", tt.body, nil, "contributionID", "c1"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
