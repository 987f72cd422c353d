package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/ledgerservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func float(v float64) *float64 { return &v }

var rowDate = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

func TestGetLedger(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Ledger(gomock.Any(), "s1").Return(&ledgerservice.Ledger{
		Scheme: &domain.Scheme{ID: "s1", TotalAmount: 100000},
		Rows: []chit.LedgerRow{{
			GeneratedRow:          domain.GeneratedRow{ID: "r2", SchemeID: "s1", ChitNo: 2, Date: rowDate, WalletAmount: 60000},
			ChitNoSeq:             2,
			AutoPayoutsThisRow:    1,
			AutoPayoutTotalAmount: 100000,
			TotalAutoPayoutsSoFar: 1,
		}},
	}, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/schemes/s1/generated", nil), "schemeID", "s1")
	rr := httptest.NewRecorder()
	handler.GetLedger(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LedgerDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 100000.0, resp.TCV)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "r2", resp.Rows[0].ID)
	assert.Equal(t, 1, resp.Rows[0].AutoPayoutsThisRow)
	assert.Equal(t, 100000.0, resp.Rows[0].AutoPayoutTotalAmount)
}

func TestGetBreakdown(t *testing.T) {
	t.Run("Query passed through", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Breakdown(gomock.Any(), "s1", "", "40000").Return(chit.Breakdown{TCV: 100000, BidAmount: 15000}, nil)

		req := withParams(httptest.NewRequest(http.MethodGet, "/api/schemes/s1/breakdown?wallet=40000", nil), "schemeID", "s1")
		rr := httptest.NewRecorder()
		handler.GetBreakdown(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp chit.Breakdown
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 15000.0, resp.BidAmount)
	})

	t.Run("Negative bid", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Breakdown(gomock.Any(), "s1", "-5", "").Return(chit.Breakdown{}, chit.ErrNegativeAmount)

		req := withParams(httptest.NewRequest(http.MethodGet, "/api/schemes/s1/breakdown?bid=-5", nil), "schemeID", "s1")
		rr := httptest.NewRecorder()
		handler.GetBreakdown(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestGenerateRow(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Numeric bid",
			body: `{"bidAmount":15000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Generate(gomock.Any(), "s1", ledgerservice.GenerateInput{Bid: "15000"}).
					Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s1", ChitNo: 1, BidAmount: 15000}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Wallet only",
			body: `{"walletAmount":"40000"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Generate(gomock.Any(), "s1", ledgerservice.GenerateInput{Wallet: "40000"}).
					Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s1", ChitNo: 1}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Not a number",
			body: `{"bidAmount":"12a"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Generate(gomock.Any(), "s1", ledgerservice.GenerateInput{Bid: "12a"}).Return(nil, chit.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Scheme not found",
			body: `{"bidAmount":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Generate(gomock.Any(), "s1", gomock.Any()).Return(nil, ledgerservice.ErrSchemeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `[`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withParams(httptest.NewRequest(http.MethodPost, "/api/schemes/s1/generated", bytes.NewBufferString(tt.body)), "schemeID", "s1")
			rr := httptest.NewRecorder()
			handler.GenerateRow(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetRow(t *testing.T) {
	handler, service := NewMock(t)
	paidAt := rowDate.Add(24 * time.Hour)
	service.EXPECT().Row(gomock.Any(), "s1", "r1").Return(&ledgerservice.RowDetail{
		Row:           domain.GeneratedRow{ID: "r1", SchemeID: "s1", Date: rowDate},
		Contributions: []domain.Contribution{{ID: "c1", SchemeID: "s1", UserID: "u1", Amount: 3000, Status: domain.ContributionCompleted, PaidAt: &paidAt}},
		Collected:     3000,
		Pending:       2000,
	}, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/schemes/s1/generated/r1", nil), "schemeID", "s1", "rowID", "r1")
	rr := httptest.NewRecorder()
	handler.GetRow(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.RowDetailDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 3000.0, resp.Collected)
	assert.Equal(t, 2000.0, resp.Pending)
	require.Len(t, resp.Contributions, 1)
	assert.Equal(t, "c1", resp.Contributions[0].ID)
}

func TestUpdateRow(t *testing.T) {
	t.Run("Released amount set", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Update(gomock.Any(), "s1", "r1", ledgerservice.RowPatch{ReleasedAmount: float(100000)}).
			Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s1", ReleasedAmount: float(100000)}, nil)

		req := withParams(httptest.NewRequest(http.MethodPut, "/api/schemes/s1/generated/r1", bytes.NewBufferString(`{"releasedAmount":100000}`)), "schemeID", "s1", "rowID", "r1")
		rr := httptest.NewRecorder()
		handler.UpdateRow(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.GeneratedRowDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotNil(t, resp.ReleasedAmount)
		assert.Equal(t, 100000.0, *resp.ReleasedAmount)
	})

	t.Run("Negative value", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Update(gomock.Any(), "s1", "r1", gomock.Any()).Return(nil, chit.ErrNegativeAmount)

		req := withParams(httptest.NewRequest(http.MethodPut, "/api/schemes/s1/generated/r1", bytes.NewBufferString(`{"bidAmount":-1}`)), "schemeID", "s1", "rowID", "r1")
		rr := httptest.NewRecorder()
		handler.UpdateRow(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestDeleteRow(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Deleted", expectedCode: http.StatusNoContent},
		{name: "Missing", err: ledgerservice.ErrRowNotFound, expectedCode: http.StatusNotFound},
		{name: "Store failure", err: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			service.EXPECT().Delete(gomock.Any(), "s1", "r1").Return(tt.err)

			req := withParams(httptest.NewRequest(http.MethodDelete, "/api/schemes/s1/generated/r1", nil), "schemeID", "s1", "rowID", "r1")
			rr := httptest.NewRecorder()
			handler.DeleteRow(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestExportLedger(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Export(gomock.Any(), "s1").Return([]byte("xlsx-bytes"), nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/schemes/s1/generated/export", nil), "schemeID", "s1")
	rr := httptest.NewRecorder()
	handler.ExportLedger(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ledger-s1.xlsx"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", rr.Body.String())
}
