package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/service/authservice"
	"github.com/birdfarm/birdfarm/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
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
			body: `{"username":"bob","email":"bob@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "bob", "bob@example.com", "password123", "").
					Return(&domain.User{ID: 1, Username: "bob", ReferralCode: "BOB1a2b3c"}, nil)
				service.EXPECT().GenerateToken(1, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Username already taken",
			body: `{"username":"bob","email":"bob@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "bob", "bob@example.com", "password123", "").
					Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrUsernameTaken.Error(),
		},
		{
			name: "Unknown referral code",
			body: `{"username":"bob","email":"bob@example.com","password":"password123","referralCode":"NOPE00000"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(context.Background(), "bob", "bob@example.com", "password123", "NOPE00000").
					Return(nil, authservice.ErrInvalidReferralCode)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidReferralCode.Error(),
		},
		{
			name:          "Missing required fields",
			body:          `{"username":"bob"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username, email and password are required",
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

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"username":"bob","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(context.Background(), "bob", "password123").
					Return(&domain.User{ID: 1, Username: "bob"}, nil)
				service.EXPECT().GenerateToken(1, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Admin flag carried into the token",
			body: `{"username":"root","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(context.Background(), "root", "password123").
					Return(&domain.User{ID: 2, Username: "root", IsAdmin: true}, nil)
				service.EXPECT().GenerateToken(2, true).Return("admin-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"bob","password":"wrong"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(context.Background(), "bob", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
