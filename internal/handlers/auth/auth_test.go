package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/GlebRadaev/chitledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

var testUser = &domain.User{
	ID:           "u1",
	Name:         "Asha",
	Email:        "asha@example.com",
	PasswordHash: "hashedpassword",
	Role:         domain.RoleMember,
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"name":"Asha","email":"asha@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "Asha", "asha@example.com", "password123").Return(testUser, nil)
				service.EXPECT().GenerateToken(testUser).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Email already registered",
			body: `{"name":"Asha","email":"asha@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "Asha", "asha@example.com", "password123").Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrEmailTaken.Error(),
		},
		{
			name: "Invalid email",
			body: `{"name":"Asha","email":"nope","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "Asha", "nope", "password123").Return(nil, authservice.ErrInvalidEmail)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidEmail.Error(),
		},
		{
			name:          "Missing password",
			body:          `{"name":"Asha","email":"asha@example.com"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Password is required",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Store failure",
			body: `{"name":"Asha","email":"asha@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "Asha", "asha@example.com", "password123").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Error generating token",
			body: `{"name":"Asha","email":"asha@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "Asha", "asha@example.com", "password123").Return(testUser, nil)
				service.EXPECT().GenerateToken(testUser).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.AuthResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, "u1", resp.User.ID)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"asha@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					Authenticate(gomock.Any(), "asha@example.com", "password123").
					Return(testUser, nil)
				service.EXPECT().
					GenerateToken(testUser).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"asha@example.com","password":"wrongpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					Authenticate(gomock.Any(), "asha@example.com", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Store failure",
			body: `{"email":"asha@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					Authenticate(gomock.Any(), "asha@example.com", "password123").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	t.Run("Current user", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Me(gomock.Any(), "u1").Return(testUser, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(pkgauth.WithSession(context.Background(), pkgauth.Session{UserID: "u1", Role: domain.RoleMember}))
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":"u1","name":"Asha","email":"asha@example.com","role":"member"}`, rr.Body.String())
	})

	t.Run("User deleted", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Me(gomock.Any(), "u1").Return(nil, authservice.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(pkgauth.WithSession(context.Background(), pkgauth.Session{UserID: "u1"}))
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("No session", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.Me(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
