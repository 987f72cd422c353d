package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func okHandler(t *testing.T, expected *Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFrom(r.Context())
		assert.True(t, ok)
		if expected != nil {
			assert.Equal(t, *expected, session)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	valid, _ := jwtService.GenerateJWT("u-1", "member", time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
		{name: "Missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + valid, expectedCode: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
	}

	handler := Middleware(jwtService)(okHandler(t, &Session{UserID: "u-1", Role: "member"}))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMiddleware_UsesValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken("abc").Return(&Claims{UserID: "u-9", Role: "admin"}, nil)

	handler := Middleware(validator)(okHandler(t, &Session{UserID: "u-9", Role: "admin"}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		session      *Session
		expectedCode int
	}{
		{name: "Admin", session: &Session{UserID: "u-1", Role: "admin"}, expectedCode: http.StatusOK},
		{name: "Member", session: &Session{UserID: "u-2", Role: "member"}, expectedCode: http.StatusForbidden},
		{name: "No session", session: nil, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/reports", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), *tt.session))
			}
			rr := httptest.NewRecorder()
			RequireAdmin(okHandler(t, tt.session)).ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
