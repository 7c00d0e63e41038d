package farmservice

import (
	"context"
	"errors"
	"time"

	"github.com/birdfarm/birdfarm/internal/accrual"
	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"github.com/birdfarm/birdfarm/pkg/money"
	"go.uber.org/zap"
)

type BirdRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Bird, error)
	FindActive(ctx context.Context) ([]domain.Bird, error)
	FindAll(ctx context.Context) ([]domain.Bird, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, bird *domain.Bird) (*domain.Bird, error)
	Update(ctx context.Context, bird *domain.Bird) (*domain.Bird, error)
}

type FlockRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.UserBird, error)
	Add(ctx context.Context, bird *domain.UserBird) error
	UpdateAccrual(ctx context.Context, userBirdID int, lastCollection time.Time, uncollected int64) error
	SetUncollected(ctx context.Context, userBirdID int, uncollected int64) error
	DecrementLifespan(ctx context.Context, userID int) (int64, error)
	UserIDsWithBirds(ctx context.Context) ([]int, error)
	AddStock(ctx context.Context, userID int, birdName string, eggs int64) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	AddReferralCommission(ctx context.Context, referrerID, referredUserID int, commission, purchase float64) error
}

const (
	// BirdLifespanDays is the lifespan of a freshly bought bird.
	BirdLifespanDays = 120

	referralCommissionRate = 0.05
	maxBirdTypes           = 6
)

var (
	ErrBirdUnavailable = errors.New("bird not found or not available")
	ErrNoBirds         = errors.New("no birds to collect eggs from")
	ErrBirdExists      = errors.New("bird type already exists")
	ErrBirdLimit       = errors.New("maximum number of bird types reached")
	ErrBirdNotFound    = errors.New("bird not found")
)

type Service struct {
	birdRepo    BirdRepo
	flockRepo   FlockRepo
	userRepo    UserRepo
	balanceRepo walletservice.BalanceRepo
	trm         pg.TXManager
}

func New(birdRepo BirdRepo, flockRepo FlockRepo, userRepo UserRepo, balanceRepo walletservice.BalanceRepo, trm pg.TXManager) *Service {
	return &Service{
		birdRepo:    birdRepo,
		flockRepo:   flockRepo,
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
		trm:         trm,
	}
}

type CollectResult struct {
	// Collected maps bird type to eggs moved into stock.
	Collected map[string]int64
	// Wait maps bird type to minutes left before its next collection.
	Wait map[string]int
}

// Collect moves production from every living bird into the egg stock and
// restarts their collection clocks. The whole pass runs in one transaction
// under the user's balance row lock, so a concurrent sweep or a second
// collect cannot credit the same elapsed window twice.
func (s *Service) Collect(ctx context.Context, userID int) (*CollectResult, error) {
	result := &CollectResult{
		Collected: make(map[string]int64),
		Wait:      make(map[string]int),
	}
	now := time.Now()

	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return walletservice.ErrUserNotFound
		}

		birds, err := s.flockRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if len(birds) == 0 {
			return ErrNoBirds
		}

		for _, bird := range birds {
			if !bird.IsAlive() {
				continue
			}

			eggs, wait := accrual.Produce(bird.LastCollection, now, bird.EggsPerHour)
			if wait > 0 {
				result.Wait[bird.BirdName] = wait
				continue
			}

			if eggs > 0 {
				if err := s.flockRepo.AddStock(ctx, userID, bird.BirdName, eggs); err != nil {
					return err
				}
			}
			// The clock advances even on a zero-egg harvest past the
			// window, and the pending counter is dropped: its window is
			// the one just credited.
			if err := s.flockRepo.UpdateAccrual(ctx, bird.ID, now, 0); err != nil {
				return err
			}
			result.Collected[bird.BirdName] += eggs
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoBirds) {
			zap.L().Error("failed to collect eggs", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

type PurchaseResult struct {
	Bird       string
	Price      float64
	NewBalance float64
}

// Buy purchases one bird of the named type from the purchase balance.
// Referral commission is handled after the purchase commits and never
// fails the purchase itself.
func (s *Service) Buy(ctx context.Context, userID int, birdName string) (*PurchaseResult, error) {
	result := &PurchaseResult{}
	var bird *domain.Bird
	now := time.Now()

	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		var err error
		bird, err = s.birdRepo.FindByName(ctx, birdName)
		if err != nil {
			return err
		}
		if bird == nil || !bird.IsActive {
			return ErrBirdUnavailable
		}

		balance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return walletservice.ErrUserNotFound
		}
		if balance.PurchaseBalance < bird.Price {
			return walletservice.ErrInsufficientBalance
		}

		balance.PurchaseBalance = money.Round2(balance.PurchaseBalance - bird.Price)
		updated, err := s.balanceRepo.UpdateUserBalance(ctx, userID, balance)
		if err != nil {
			return err
		}

		err = s.flockRepo.Add(ctx, &domain.UserBird{
			UserID:         userID,
			BirdID:         bird.ID,
			PurchaseDate:   now,
			DaysRemaining:  BirdLifespanDays,
			LastCollection: now,
		})
		if err != nil {
			return err
		}

		result.Bird = bird.Name
		result.Price = bird.Price
		result.NewBalance = updated.PurchaseBalance
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBirdUnavailable) && !errors.Is(err, walletservice.ErrInsufficientBalance) {
			zap.L().Error("failed to buy bird", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}

	if err := s.creditReferral(ctx, userID, bird); err != nil {
		zap.L().Error("referral commission failed, purchase kept",
			zap.Int("userID", userID), zap.Error(err))
	}

	return result, nil
}

// creditReferral pays the referrer 5% of the purchase in its own
// transaction. A missing referrer degrades silently.
func (s *Service) creditReferral(ctx context.Context, userID int, bird *domain.Bird) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.ReferredBy == nil {
		return nil
	}
	referrerID := *user.ReferredBy

	return s.trm.Begin(ctx, func(ctx context.Context) error {
		refBalance, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, referrerID)
		if err != nil {
			return err
		}
		if refBalance == nil {
			zap.L().Info("referrer has no balance record, skipping commission",
				zap.Int("referrerID", referrerID))
			return nil
		}

		commission := money.Round2(bird.Price * referralCommissionRate)
		refBalance.PurchaseBalance = money.Round2(refBalance.PurchaseBalance + commission)
		refBalance.ReferralEarnings = money.Round2(refBalance.ReferralEarnings + commission)

		if _, err := s.balanceRepo.UpdateUserBalance(ctx, referrerID, refBalance); err != nil {
			return err
		}
		return s.userRepo.AddReferralCommission(ctx, referrerID, userID, commission, bird.Price)
	})
}

// Catalog lists the purchasable bird types, cheapest first.
func (s *Service) Catalog(ctx context.Context) ([]domain.Bird, error) {
	birds, err := s.birdRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to fetch catalog", zap.Error(err))
		return nil, err
	}
	return birds, nil
}

// MyBirds returns the user's flock together with a per-type count seeded
// from the active catalog, so types the user does not own show up as zero.
func (s *Service) MyBirds(ctx context.Context, userID int) ([]domain.UserBird, map[string]int, error) {
	catalog, err := s.birdRepo.FindActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	birds, err := s.flockRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	quantities := make(map[string]int, len(catalog))
	for _, b := range catalog {
		quantities[b.Name] = 0
	}
	for _, b := range birds {
		if _, ok := quantities[b.BirdName]; ok {
			quantities[b.BirdName]++
		}
	}
	return birds, quantities, nil
}

// EggsToCollect previews production per bird type without mutating
// anything, ignoring the minimum-interval gate.
func (s *Service) EggsToCollect(ctx context.Context, userID int) (map[string]int64, map[string]int, error) {
	birds, err := s.flockRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	ready := make(map[string]int64)
	counts := make(map[string]int)
	for _, bird := range birds {
		if !bird.IsAlive() {
			continue
		}
		ready[bird.BirdName] += accrual.Ready(bird.LastCollection, now, bird.EggsPerHour)
		counts[bird.BirdName]++
	}
	return ready, counts, nil
}

func (s *Service) AllBirds(ctx context.Context) ([]domain.Bird, error) {
	birds, err := s.birdRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch birds", zap.Error(err))
		return nil, err
	}
	return birds, nil
}

func (s *Service) CreateBird(ctx context.Context, name string, price, eggsPerHour, eggsPerMonth float64) (*domain.Bird, error) {
	existing, err := s.birdRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBirdExists
	}

	count, err := s.birdRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= maxBirdTypes {
		return nil, ErrBirdLimit
	}

	bird, err := s.birdRepo.Create(ctx, &domain.Bird{
		Name:         name,
		Price:        price,
		EggsPerHour:  eggsPerHour,
		EggsPerMonth: eggsPerMonth,
	})
	if err != nil {
		zap.L().Error("failed to create bird", zap.Error(err))
		return nil, err
	}
	return bird, nil
}

func (s *Service) UpdateBird(ctx context.Context, id int, price, eggsPerHour, eggsPerMonth float64, isActive bool) (*domain.Bird, error) {
	bird, err := s.birdRepo.Update(ctx, &domain.Bird{
		ID:           id,
		Price:        price,
		EggsPerHour:  eggsPerHour,
		EggsPerMonth: eggsPerMonth,
		IsActive:     isActive,
	})
	if err != nil {
		zap.L().Error("failed to update bird", zap.Error(err))
		return nil, err
	}
	if bird == nil {
		return nil, ErrBirdNotFound
	}
	return bird, nil
}
