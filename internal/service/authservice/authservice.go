package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateReferral(ctx context.Context, referrerID, referredUserID int) error
	ListPlayers(ctx context.Context) ([]domain.User, error)
}

type BalanceService interface {
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

const tokenTTL = 24 * time.Hour

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type Service struct {
	userRepo       UserRepo
	balanceService BalanceService
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
}

func New(userRepo UserRepo, balanceService BalanceService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:       userRepo,
		balanceService: balanceService,
		hashService:    hashService,
		jwtService:     jwtService,
	}
}

// Register creates a user with a fresh balance and personal referral code.
// An empty referralCode means the user signed up on their own; a non-empty
// one must resolve to an existing user.
func (s *Service) Register(ctx context.Context, username, email, password, referralCode string) (*domain.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", username))
		return nil, ErrUsernameTaken
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	var referrer *domain.User
	if referralCode != "" {
		referrer, err = s.userRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, ErrInvalidReferralCode
		}
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		ReferralCode: newReferralCode(username),
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}

	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	if _, err = s.balanceService.CreateBalance(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create balance", zap.Error(err))
		return nil, err
	}

	if referrer != nil {
		if err := s.userRepo.CreateReferral(ctx, referrer.ID, newUser.ID); err != nil {
			zap.L().Error("can't link referral", zap.Error(err))
			return nil, err
		}
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Info("authentication failed", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("authentication failed", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Players lists the non-admin accounts for the admin panel.
func (s *Service) Players(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListPlayers(ctx)
}

// newReferralCode builds a shareable code from the first letters of the
// username plus random hex, e.g. "BOB3f9a1c".
func newReferralCode(username string) string {
	prefix := strings.ToUpper(username)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return prefix + hex.EncodeToString(buf)
}
