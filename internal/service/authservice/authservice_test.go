package authservice

import (
	"context"
	"strings"
	"testing"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	userRepo       *MockUserRepo
	balanceService *MockBalanceService
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		userRepo:       NewMockUserRepo(ctrl),
		balanceService: NewMockBalanceService(ctrl),
	}
	service := New(m.userRepo, m.balanceService, &auth.HashService{}, &auth.JWTService{})
	return service, m
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		referralCode  string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Plain registration",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(nil, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
				m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.True(t, strings.HasPrefix(u.ReferralCode, "BOB"))
						assert.Len(t, u.ReferralCode, 9)
						assert.Nil(t, u.ReferredBy)
						u.ID = 1
						return u, nil
					})
				m.balanceService.EXPECT().CreateBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
			},
		},
		{
			name:         "Registration through a referral code",
			referralCode: "ALI1a2b3c",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(nil, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
				m.userRepo.EXPECT().FindByReferralCode(gomock.Any(), "ALI1a2b3c").Return(&domain.User{ID: 7, Username: "alice"}, nil)
				m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.NotNil(t, u.ReferredBy)
						assert.Equal(t, 7, *u.ReferredBy)
						u.ID = 2
						return u, nil
					})
				m.balanceService.EXPECT().CreateBalance(gomock.Any(), 2).Return(&domain.Balance{UserID: 2}, nil)
				m.userRepo.EXPECT().CreateReferral(gomock.Any(), 7, 2).Return(nil)
			},
		},
		{
			name: "Username already taken",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(&domain.User{ID: 1, Username: "bob"}, nil)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name: "Email already registered",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(nil, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(&domain.User{ID: 2}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:         "Unknown referral code",
			referralCode: "NOPE00000",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(nil, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
				m.userRepo.EXPECT().FindByReferralCode(gomock.Any(), "NOPE00000").Return(nil, nil)
			},
			expectedError: ErrInvalidReferralCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Register(context.Background(), "bob", "bob@example.com", "secret-password", tt.referralCode)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "secret-password", user.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("secret-password")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:     "Valid credentials",
			password: "secret-password",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").
					Return(&domain.User{ID: 1, Username: "bob", PasswordHash: hash}, nil)
			},
		},
		{
			name:     "Wrong password",
			password: "not-the-password",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").
					Return(&domain.User{ID: 1, Username: "bob", PasswordHash: hash}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			password: "secret-password",
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Authenticate(context.Background(), "bob", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "bob", user.Username)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(1, true)
	assert.NoError(t, err)

	claims, err := (&auth.JWTService{}).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestNewReferralCode(t *testing.T) {
	code := newReferralCode("al")
	assert.True(t, strings.HasPrefix(code, "AL"))
	assert.Len(t, code, 8)

	other := newReferralCode("al")
	assert.NotEqual(t, code, other)
}
