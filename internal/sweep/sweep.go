package sweep

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/birdfarm/birdfarm/internal/accrual"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/internal/service/farmservice"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// salvageShare is the fraction of pending eggs a dead bird leaves
	// behind when the sweep moves them into stock.
	salvageShare = 0.8

	// DefaultWorkers is the pool size the application starts with.
	DefaultWorkers = 4
)

// errBusy marks a user whose balance row another transaction holds; the
// sweep skips them and the next tick catches up.
var errBusy = errors.New("user busy")

// Service runs the two background passes: the reconcile sweep that keeps
// every bird's pending-egg counter current (and salvages dead birds'
// eggs), and the daily decay that ages the flocks.
type Service struct {
	flockRepo   farmservice.FlockRepo
	balanceRepo walletservice.BalanceRepo
	trm         pg.TXManager
	pool        WorkerPoolI

	sweepEvery time.Duration
	decayEvery time.Duration

	inFlight sync.Map
}

func New(flockRepo farmservice.FlockRepo, balanceRepo walletservice.BalanceRepo, trm pg.TXManager, pool WorkerPoolI, sweepEvery, decayEvery time.Duration) *Service {
	return &Service{
		flockRepo:   flockRepo,
		balanceRepo: balanceRepo,
		trm:         trm,
		pool:        pool,
		sweepEvery:  sweepEvery,
		decayEvery:  decayEvery,
	}
}

// Start blocks until ctx is cancelled, running both tickers.
func (s *Service) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(s.sweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				s.reconcileAll(ctx)
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(s.decayEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				s.decayAll(ctx)
			}
		}
	})

	err := g.Wait()
	s.pool.Close()
	return err
}

// reconcileAll fans one reconcile task per flock owner out to the pool.
// A user already queued from the previous tick is not queued again.
func (s *Service) reconcileAll(ctx context.Context) {
	userIDs, err := s.flockRepo.UserIDsWithBirds(ctx)
	if err != nil {
		zap.L().Error("sweep can't list flock owners", zap.Error(err))
		return
	}

	for _, userID := range userIDs {
		if _, loaded := s.inFlight.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}
		userID := userID
		err := s.pool.AddTask(ctx, func() error {
			defer s.inFlight.Delete(userID)
			return s.reconcileUser(ctx, userID)
		})
		if err != nil {
			s.inFlight.Delete(userID)
			return
		}
	}
}

// reconcileUser refreshes the pending-egg counters of one user's flock
// under the same balance row lock collection takes. The counter is SET to
// the production since the bird's last collection, never added to, so
// repeating the pass is harmless. Dead birds surrender their pending eggs
// to stock once, at the salvage share.
func (s *Service) reconcileUser(ctx context.Context, userID int) error {
	err := s.trm.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalanceForUpdateNoWait(ctx, userID)
		if err != nil {
			if pg.IsLockNotAvailable(err) {
				return errBusy
			}
			return err
		}
		if balance == nil {
			return nil
		}

		birds, err := s.flockRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, bird := range birds {
			if bird.IsAlive() {
				eggs, wait := accrual.Produce(bird.LastCollection, now, bird.EggsPerHour)
				if wait > 0 || eggs == bird.UncollectedEggs {
					continue
				}
				if err := s.flockRepo.SetUncollected(ctx, bird.ID, eggs); err != nil {
					return err
				}
				continue
			}

			if bird.UncollectedEggs == 0 {
				continue
			}
			salvaged := int64(float64(bird.UncollectedEggs) * salvageShare)
			if salvaged > 0 {
				if err := s.flockRepo.AddStock(ctx, userID, bird.BirdName, salvaged); err != nil {
					return err
				}
			}
			if err := s.flockRepo.SetUncollected(ctx, bird.ID, 0); err != nil {
				return err
			}
			zap.L().Info("salvaged eggs from dead bird",
				zap.Int("userID", userID), zap.String("bird", bird.BirdName), zap.Int64("eggs", salvaged))
		}
		return nil
	})
	if errors.Is(err, errBusy) {
		return nil
	}
	return err
}

// decayAll ages every flock by one day. Birds hitting zero stay in place;
// the next reconcile pass salvages whatever they had pending.
func (s *Service) decayAll(ctx context.Context) {
	userIDs, err := s.flockRepo.UserIDsWithBirds(ctx)
	if err != nil {
		zap.L().Error("decay can't list flock owners", zap.Error(err))
		return
	}

	var aged int64
	for _, userID := range userIDs {
		err := s.trm.Begin(ctx, func(ctx context.Context) error {
			if _, err := s.balanceRepo.GetUserBalanceForUpdate(ctx, userID); err != nil {
				return err
			}
			n, err := s.flockRepo.DecrementLifespan(ctx, userID)
			aged += n
			return err
		})
		if err != nil {
			zap.L().Error("lifespan decay failed", zap.Int("userID", userID), zap.Error(err))
		}
	}
	zap.L().Info("lifespan decay finished", zap.Int("users", len(userIDs)), zap.Int64("birds", aged))
}
