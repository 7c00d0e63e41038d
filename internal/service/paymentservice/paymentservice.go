package paymentservice

import (
	"context"
	"errors"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"github.com/birdfarm/birdfarm/pkg/money"
	"github.com/birdfarm/birdfarm/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepo interface {
	CreateDeposit(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	FindDeposit(ctx context.Context, id int) (*domain.Deposit, error)
	TransitionDeposit(ctx context.Context, id int, status, adminNote string) (*domain.Deposit, error)
	DepositsByUserID(ctx context.Context, userID, limit int) ([]domain.Deposit, error)
	AllDeposits(ctx context.Context) ([]domain.Deposit, error)
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindWithdrawal(ctx context.Context, id int) (*domain.Withdrawal, error)
	TransitionWithdrawal(ctx context.Context, id int, status, adminNote string) (*domain.Withdrawal, error)
	WithdrawalsByUserID(ctx context.Context, userID, limit int) ([]domain.Withdrawal, error)
	AllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	CountDepositsByStatus(ctx context.Context, status string) (int, error)
	CountWithdrawalsByStatus(ctx context.Context, status string) (int, error)
	SumApprovedDepositsUSD(ctx context.Context) (float64, error)
	SumApprovedWithdrawalsUSD(ctx context.Context) (float64, error)
}

type UserRepo interface {
	CountPlayers(ctx context.Context) (int, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key string, value float64) error
}

// Request statuses shared by deposits and withdrawals.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

const (
	// MinWithdrawalGold is the smallest withdrawable amount.
	MinWithdrawalGold = 7000

	defaultUSDToGoldRate  = 7000
	defaultEggsToGoldRate = 0.01

	historyLimit = 10
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidAccount    = errors.New("invalid payeer account")
	ErrBelowMinimum      = errors.New("amount is below the withdrawal minimum")
	ErrInsufficientFunds = errors.New("insufficient withdraw balance")
	ErrRequestNotFound   = errors.New("request not found")
	ErrInvalidStatus     = errors.New("status must be approved or declined")
	ErrAlreadyProcessed  = errors.New("request already processed")
	ErrUnknownRateKey    = errors.New("unknown rate key")
)

type Service struct {
	paymentRepo  PaymentRepo
	balanceRepo  walletservice.BalanceRepo
	userRepo     UserRepo
	settingsRepo SettingsRepo
	trm          pg.TXManager
}

func New(paymentRepo PaymentRepo, balanceRepo walletservice.BalanceRepo, userRepo UserRepo, settingsRepo SettingsRepo, trm pg.TXManager) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		balanceRepo:  balanceRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		trm:          trm,
	}
}

// CreateDeposit records a pending deposit request. The USD to gold rate is
// snapshotted on the record so a later rate change cannot alter what an
// approval credits.
func (s *Service) CreateDeposit(ctx context.Context, userID int, payeerID, accountHolder string, usdAmount float64) (*domain.Deposit, error) {
	if usdAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validate.IsPayeerAccount(payeerID) {
		return nil, ErrInvalidAccount
	}

	rate, err := s.rate(ctx, domain.SettingUSDToGoldRate, defaultUSDToGoldRate)
	if err != nil {
		return nil, err
	}

	deposit, err := s.paymentRepo.CreateDeposit(ctx, &domain.Deposit{
		Reference:      uuid.New(),
		UserID:         userID,
		PayeerID:       payeerID,
		AccountHolder:  accountHolder,
		USDAmount:      money.Round2(usdAmount),
		GoldAmount:     money.Round2(usdAmount * rate),
		ConversionRate: rate,
	})
	if err != nil {
		zap.L().Error("failed to create deposit", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// CreateWithdrawal debits the withdraw balance immediately and records a
// pending request. A decline refunds the debit later.
func (s *Service) CreateWithdrawal(ctx context.Context, userID int, goldAmount float64, accountID, accountName string) (*domain.Withdrawal, error) {
	if goldAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if goldAmount < MinWithdrawalGold {
		return nil, ErrBelowMinimum
	}
	if !validate.IsPayeerAccount(accountID) {
		return nil, ErrInvalidAccount
	}

	var withdrawal *domain.Withdrawal
	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return walletservice.ErrUserNotFound
		}
		if balance.WithdrawBalance < goldAmount {
			return ErrInsufficientFunds
		}

		rate, err := s.rate(ctx, domain.SettingUSDToGoldRate, defaultUSDToGoldRate)
		if err != nil {
			return err
		}

		balance.WithdrawBalance = money.Round2(balance.WithdrawBalance - goldAmount)
		if _, err := s.balanceRepo.UpdateUserBalance(ctx, userID, balance); err != nil {
			return err
		}

		withdrawal, err = s.paymentRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			Reference:         uuid.New(),
			UserID:            userID,
			GoldAmount:        money.Round2(goldAmount),
			USDAmount:         money.Round2(goldAmount / rate),
			ConversionRate:    rate,
			PayeerAccountID:   accountID,
			PayeerAccountName: accountName,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("failed to create withdrawal", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return withdrawal, nil
}

func (s *Service) Deposits(ctx context.Context, userID int) ([]domain.Deposit, error) {
	return s.paymentRepo.DepositsByUserID(ctx, userID, historyLimit)
}

func (s *Service) Withdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	return s.paymentRepo.WithdrawalsByUserID(ctx, userID, historyLimit)
}

func (s *Service) AllDeposits(ctx context.Context) ([]domain.Deposit, error) {
	return s.paymentRepo.AllDeposits(ctx)
}

func (s *Service) AllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	return s.paymentRepo.AllWithdrawals(ctx)
}

// UpdateDepositStatus resolves a pending deposit. Approval credits the
// purchase balance with the snapshotted gold amount in the same
// transaction; a repeated call finds no pending row and fails without
// crediting twice.
func (s *Service) UpdateDepositStatus(ctx context.Context, id int, status, adminNote string) (*domain.Deposit, error) {
	if status != StatusApproved && status != StatusDeclined {
		return nil, ErrInvalidStatus
	}

	var updated *domain.Deposit
	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindDeposit(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrRequestNotFound
		}

		updated, err = s.paymentRepo.TransitionDeposit(ctx, id, status, adminNote)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrAlreadyProcessed
		}
		if status != StatusApproved {
			return nil
		}

		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, updated.UserID)
		if err != nil {
			return err
		}
		if balance == nil {
			return walletservice.ErrUserNotFound
		}
		balance.PurchaseBalance = money.Round2(balance.PurchaseBalance + updated.GoldAmount)
		_, err = s.balanceRepo.UpdateUserBalance(ctx, updated.UserID, balance)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotFound) && !errors.Is(err, ErrAlreadyProcessed) {
			zap.L().Error("failed to update deposit", zap.Int("depositID", id), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("deposit resolved", zap.Int("depositID", id), zap.String("status", status))
	return updated, nil
}

// UpdateWithdrawalStatus resolves a pending withdrawal. Approval adds the
// USD amount to the paid-out total; decline refunds the gold debited at
// request time. Both happen at most once per request.
func (s *Service) UpdateWithdrawalStatus(ctx context.Context, id int, status, adminNote string) (*domain.Withdrawal, error) {
	if status != StatusApproved && status != StatusDeclined {
		return nil, ErrInvalidStatus
	}

	var updated *domain.Withdrawal
	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindWithdrawal(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrRequestNotFound
		}

		updated, err = s.paymentRepo.TransitionWithdrawal(ctx, id, status, adminNote)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrAlreadyProcessed
		}

		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, updated.UserID)
		if err != nil {
			return err
		}
		if balance == nil {
			return walletservice.ErrUserNotFound
		}

		switch status {
		case StatusApproved:
			balance.WithdrawnTotal = money.Round2(balance.WithdrawnTotal + updated.USDAmount)
		case StatusDeclined:
			balance.WithdrawBalance = money.Round2(balance.WithdrawBalance + updated.GoldAmount)
		}
		_, err = s.balanceRepo.UpdateUserBalance(ctx, updated.UserID, balance)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotFound) && !errors.Is(err, ErrAlreadyProcessed) {
			zap.L().Error("failed to update withdrawal", zap.Int("withdrawalID", id), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal resolved", zap.Int("withdrawalID", id), zap.String("status", status))
	return updated, nil
}

type Rates struct {
	USDToGold  float64
	EggsToGold float64
}

func (s *Service) Rates(ctx context.Context) (*Rates, error) {
	usdToGold, err := s.rate(ctx, domain.SettingUSDToGoldRate, defaultUSDToGoldRate)
	if err != nil {
		return nil, err
	}
	eggsToGold, err := s.rate(ctx, domain.SettingEggsToGoldRate, defaultEggsToGoldRate)
	if err != nil {
		return nil, err
	}
	return &Rates{USDToGold: usdToGold, EggsToGold: eggsToGold}, nil
}

func (s *Service) UpdateRate(ctx context.Context, key string, value float64) error {
	if key != domain.SettingUSDToGoldRate && key != domain.SettingEggsToGoldRate {
		return ErrUnknownRateKey
	}
	if value <= 0 {
		return ErrInvalidAmount
	}
	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		return err
	}
	zap.L().Info("conversion rate updated", zap.String("key", key), zap.Float64("value", value))
	return nil
}

type DashboardStats struct {
	TotalPlayers       int
	PendingDeposits    int
	PendingWithdrawals int
	TotalDepositedUSD  float64
	TotalWithdrawnUSD  float64
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalPlayers, err = s.userRepo.CountPlayers(ctx); err != nil {
		return nil, err
	}
	if stats.PendingDeposits, err = s.paymentRepo.CountDepositsByStatus(ctx, StatusPending); err != nil {
		return nil, err
	}
	if stats.PendingWithdrawals, err = s.paymentRepo.CountWithdrawalsByStatus(ctx, StatusPending); err != nil {
		return nil, err
	}
	if stats.TotalDepositedUSD, err = s.paymentRepo.SumApprovedDepositsUSD(ctx); err != nil {
		return nil, err
	}
	if stats.TotalWithdrawnUSD, err = s.paymentRepo.SumApprovedWithdrawalsUSD(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Service) rate(ctx context.Context, key string, fallback float64) (float64, error) {
	setting, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return fallback, nil
	}
	return setting.Value, nil
}
