package walletservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/pkg/money"
	"go.uber.org/zap"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetUserBalanceForUpdate(ctx context.Context, userID int) (*domain.Balance, error)
	GetUserBalanceForUpdateNoWait(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	UpdateUserBalance(ctx context.Context, userID int, balance *domain.Balance) (*domain.Balance, error)
}

type StockRepo interface {
	GetStock(ctx context.Context, userID int) ([]domain.StockEntry, error)
	ClearStock(ctx context.Context, userID int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetLastBonusClaim(ctx context.Context, userID int, claimedAt time.Time) error
	FindReferralsByReferrer(ctx context.Context, referrerID int) ([]domain.ReferralInfo, error)
}

type BonusRepo interface {
	Create(ctx context.Context, bonus *domain.Bonus) error
	FindByUserID(ctx context.Context, userID, limit int) ([]domain.Bonus, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
}

const (
	purchaseShare  = 0.30
	withdrawShare  = 0.70
	exchangeMarkup = 1.03

	bonusMin      = 10
	bonusMax      = 100
	bonusCooldown = 24 * time.Hour

	defaultEggsToGoldRate = 0.01

	bonusHistoryLimit = 20
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
)

// CooldownError is returned when the daily bonus is claimed again within
// the cooldown window.
type CooldownError struct {
	HoursLeft int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d hours before claiming next bonus", e.HoursLeft)
}

type Service struct {
	balanceRepo  BalanceRepo
	stockRepo    StockRepo
	userRepo     UserRepo
	bonusRepo    BonusRepo
	settingsRepo SettingsRepo
	trm          pg.TXManager

	randInt func(n int) int
}

func New(balanceRepo BalanceRepo, stockRepo StockRepo, userRepo UserRepo, bonusRepo BonusRepo, settingsRepo SettingsRepo, trm pg.TXManager) *Service {
	return &Service{
		balanceRepo:  balanceRepo,
		stockRepo:    stockRepo,
		userRepo:     userRepo,
		bonusRepo:    bonusRepo,
		settingsRepo: settingsRepo,
		trm:          trm,
		randInt:      rand.Intn,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, ErrUserNotFound
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) Stock(ctx context.Context, userID int) ([]domain.StockEntry, error) {
	stock, err := s.stockRepo.GetStock(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get egg stock", zap.Error(err))
		return nil, err
	}
	return stock, nil
}

type SellResult struct {
	TotalEggs    int64
	TotalGold    float64
	PurchaseGold float64
	WithdrawGold float64
	EggsByType   map[string]int64
}

// Sell converts the whole egg stock into gold, credited 30% to the
// purchase balance and 70% to the withdraw balance. Selling an empty
// stock is a no-op, not an error.
func (s *Service) Sell(ctx context.Context, userID int) (*SellResult, error) {
	result := &SellResult{EggsByType: make(map[string]int64)}

	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		stock, err := s.stockRepo.GetStock(ctx, userID)
		if err != nil {
			return err
		}
		for _, entry := range stock {
			if entry.Eggs > 0 {
				result.TotalEggs += entry.Eggs
				result.EggsByType[entry.BirdName] = entry.Eggs
			}
		}
		if result.TotalEggs == 0 {
			return nil
		}

		rate, err := s.eggsToGoldRate(ctx)
		if err != nil {
			return err
		}

		result.TotalGold = money.Round2(float64(result.TotalEggs) * rate)
		result.PurchaseGold = money.Round2(result.TotalGold * purchaseShare)
		result.WithdrawGold = money.Round2(result.TotalGold * withdrawShare)

		balance.PurchaseBalance = money.Round2(balance.PurchaseBalance + result.PurchaseGold)
		balance.WithdrawBalance = money.Round2(balance.WithdrawBalance + result.WithdrawGold)

		if _, err := s.balanceRepo.UpdateUserBalance(ctx, userID, balance); err != nil {
			return err
		}
		return s.stockRepo.ClearStock(ctx, userID)
	})
	if err != nil {
		zap.L().Error("failed to sell eggs", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

type ExchangeResult struct {
	ExchangedAmount    float64
	ReceivedAmount     float64
	NewPurchaseBalance float64
	NewWithdrawBalance float64
}

// Exchange moves amount from the withdraw balance to the purchase balance
// at a 3% markup.
func (s *Service) Exchange(ctx context.Context, userID int, amount float64) (*ExchangeResult, error) {
	result := &ExchangeResult{}

	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}
		if amount <= 0 || amount > balance.WithdrawBalance {
			return ErrInsufficientBalance
		}

		received := money.Round2(amount * exchangeMarkup)
		balance.WithdrawBalance = money.Round2(balance.WithdrawBalance - amount)
		balance.PurchaseBalance = money.Round2(balance.PurchaseBalance + received)

		updated, err := s.balanceRepo.UpdateUserBalance(ctx, userID, balance)
		if err != nil {
			return err
		}

		result.ExchangedAmount = amount
		result.ReceivedAmount = received
		result.NewPurchaseBalance = updated.PurchaseBalance
		result.NewWithdrawBalance = updated.WithdrawBalance
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to exchange balance", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

type BonusResult struct {
	Amount     float64
	NewBalance float64
}

// ClaimBonus grants a random 10..100 gold once per 24 hours and records
// the grant for history.
func (s *Service) ClaimBonus(ctx context.Context, userID int) (*BonusResult, error) {
	result := &BonusResult{}
	now := time.Now()

	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.LastBonusClaim != nil {
			sinceLast := now.Sub(*user.LastBonusClaim)
			if sinceLast < bonusCooldown {
				hoursLeft := int(math.Ceil(bonusCooldown.Hours() - sinceLast.Hours()))
				return &CooldownError{HoursLeft: hoursLeft}
			}
		}

		amount := float64(s.randInt(bonusMax-bonusMin+1) + bonusMin)
		balance.PurchaseBalance = money.Round2(balance.PurchaseBalance + amount)

		updated, err := s.balanceRepo.UpdateUserBalance(ctx, userID, balance)
		if err != nil {
			return err
		}
		if err := s.userRepo.SetLastBonusClaim(ctx, userID, now); err != nil {
			return err
		}
		if err := s.bonusRepo.Create(ctx, &domain.Bonus{UserID: userID, Amount: amount}); err != nil {
			return err
		}

		result.Amount = amount
		result.NewBalance = updated.PurchaseBalance
		return nil
	})
	if err != nil {
		var cooldown *CooldownError
		if !errors.As(err, &cooldown) {
			zap.L().Error("failed to claim bonus", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("daily bonus claimed", zap.Int("userID", userID), zap.Float64("amount", result.Amount))
	return result, nil
}

func (s *Service) BonusHistory(ctx context.Context, userID int) ([]domain.Bonus, error) {
	bonuses, err := s.bonusRepo.FindByUserID(ctx, userID, bonusHistoryLimit)
	if err != nil {
		zap.L().Error("failed to fetch bonus history", zap.Error(err))
		return nil, err
	}
	return bonuses, nil
}

type ReferralOverview struct {
	ReferralCode  string
	TotalEarnings float64
	Referrals     []domain.ReferralInfo
}

func (s *Service) Referrals(ctx context.Context, userID int) (*ReferralOverview, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := s.userRepo.FindReferralsByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &ReferralOverview{
		ReferralCode: user.ReferralCode,
		Referrals:    referrals,
	}
	if balance != nil {
		overview.TotalEarnings = balance.ReferralEarnings
	}
	return overview, nil
}

func (s *Service) eggsToGoldRate(ctx context.Context) (float64, error) {
	setting, err := s.settingsRepo.Get(ctx, domain.SettingEggsToGoldRate)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return defaultEggsToGoldRate, nil
	}
	return setting.Value, nil
}
