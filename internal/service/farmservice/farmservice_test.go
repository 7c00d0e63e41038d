package farmservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	birdRepo    *MockBirdRepo
	flockRepo   *MockFlockRepo
	userRepo    *MockUserRepo
	balanceRepo *walletservice.MockBalanceRepo
	trm         *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		birdRepo:    NewMockBirdRepo(ctrl),
		flockRepo:   NewMockFlockRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		balanceRepo: walletservice.NewMockBalanceRepo(ctrl),
		trm:         pg.NewMockTXManager(ctrl),
	}
	service := New(m.birdRepo, m.flockRepo, m.userRepo, m.balanceRepo, m.trm)
	return service, m
}

func beginPassthrough(trm *pg.MockTXManager) {
	trm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name              string
		prepareMock       func(m *mocks)
		expectedCollected map[string]int64
		expectedWait      map[string]int
		expectedError     error
	}{
		{
			name: "Ripe bird credited and clock advanced",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.flockRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.UserBird{
					{ID: 10, UserID: 1, BirdName: "green", EggsPerHour: 1,
						DaysRemaining: 100, LastCollection: time.Now().Add(-2 * time.Hour)},
				}, nil)
				m.flockRepo.EXPECT().AddStock(gomock.Any(), 1, "green", int64(2)).Return(nil)
				m.flockRepo.EXPECT().UpdateAccrual(gomock.Any(), 10, gomock.Any(), int64(0)).Return(nil)
			},
			expectedCollected: map[string]int64{"green": 2},
			expectedWait:      map[string]int{},
		},
		{
			name: "Bird inside the minimum window reports wait",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.flockRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.UserBird{
					{ID: 11, UserID: 1, BirdName: "brown", EggsPerHour: 2.5,
						DaysRemaining: 50, LastCollection: time.Now().Add(-5 * time.Minute)},
				}, nil)
			},
			expectedCollected: map[string]int64{},
			expectedWait:      map[string]int{"brown": 5},
		},
		{
			name: "Dead bird skipped entirely",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.flockRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.UserBird{
					{ID: 12, UserID: 1, BirdName: "red", EggsPerHour: 25,
						DaysRemaining: 0, LastCollection: time.Now().Add(-3 * time.Hour), UncollectedEggs: 75},
				}, nil)
			},
			expectedCollected: map[string]int64{},
			expectedWait:      map[string]int{},
		},
		{
			name: "No birds at all",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.flockRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrNoBirds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.Collect(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCollected, result.Collected)
				assert.Equal(t, tt.expectedWait, result.Wait)
			}
		})
	}
}

func TestBuy(t *testing.T) {
	green := &domain.Bird{ID: 1, Name: "green", Price: 100, EggsPerHour: 1, IsActive: true}

	tests := []struct {
		name           string
		bird           string
		prepareMock    func(m *mocks)
		expectedResult *PurchaseResult
		expectedError  error
	}{
		{
			name: "Purchase without referrer",
			bird: "green",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "green").Return(green, nil)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, PurchaseBalance: 150}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{UserID: 1, PurchaseBalance: 50}).
					Return(&domain.Balance{UserID: 1, PurchaseBalance: 50}, nil)
				m.flockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ub *domain.UserBird) error {
						assert.Equal(t, 1, ub.UserID)
						assert.Equal(t, green.ID, ub.BirdID)
						assert.Equal(t, BirdLifespanDays, ub.DaysRemaining)
						return nil
					})
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
			},
			expectedResult: &PurchaseResult{Bird: "green", Price: 100, NewBalance: 50},
		},
		{
			name: "Purchase pays referral commission",
			bird: "green",
			prepareMock: func(m *mocks) {
				referrerID := 7
				beginPassthrough(m.trm)
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "green").Return(green, nil)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, PurchaseBalance: 100}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, gomock.Any()).Return(&domain.Balance{UserID: 1}, nil)
				m.flockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, ReferredBy: &referrerID}, nil)
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), referrerID).
					Return(&domain.Balance{UserID: referrerID, PurchaseBalance: 10, ReferralEarnings: 1}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), referrerID, &domain.Balance{
					UserID:           referrerID,
					PurchaseBalance:  15,
					ReferralEarnings: 6,
				}).Return(&domain.Balance{UserID: referrerID}, nil)
				m.userRepo.EXPECT().AddReferralCommission(gomock.Any(), referrerID, 1, 5.0, 100.0).Return(nil)
			},
			expectedResult: &PurchaseResult{Bird: "green", Price: 100, NewBalance: 0},
		},
		{
			name: "Insufficient purchase balance",
			bird: "green",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "green").Return(green, nil)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, PurchaseBalance: 50}, nil)
			},
			expectedError: walletservice.ErrInsufficientBalance,
		},
		{
			name: "Unknown bird type",
			bird: "pink",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "pink").Return(nil, nil)
			},
			expectedError: ErrBirdUnavailable,
		},
		{
			name: "Inactive bird not purchasable",
			bird: "green",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "green").
					Return(&domain.Bird{ID: 1, Name: "green", Price: 100, IsActive: false}, nil)
			},
			expectedError: ErrBirdUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.Buy(context.Background(), 1, tt.bird)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestBuyKeepsPurchaseWhenCommissionFails(t *testing.T) {
	service, m := NewMock(t)
	green := &domain.Bird{ID: 1, Name: "green", Price: 100, IsActive: true}

	beginPassthrough(m.trm)
	m.birdRepo.EXPECT().FindByName(gomock.Any(), "green").Return(green, nil)
	m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, PurchaseBalance: 100}, nil)
	m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, gomock.Any()).Return(&domain.Balance{UserID: 1}, nil)
	m.flockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("db error"))

	result, err := service.Buy(context.Background(), 1, "green")
	assert.NoError(t, err)
	assert.Equal(t, "green", result.Bird)
}

func TestMyBirds(t *testing.T) {
	service, m := NewMock(t)

	m.birdRepo.EXPECT().FindActive(gomock.Any()).Return([]domain.Bird{
		{ID: 1, Name: "green"}, {ID: 2, Name: "brown"},
	}, nil)
	m.flockRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.UserBird{
		{ID: 10, BirdName: "green", DaysRemaining: 100},
		{ID: 11, BirdName: "green", DaysRemaining: 0},
	}, nil)

	birds, quantities, err := service.MyBirds(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, birds, 2)
	assert.Equal(t, map[string]int{"green": 2, "brown": 0}, quantities)
}

func TestEggsToCollect(t *testing.T) {
	service, m := NewMock(t)

	m.flockRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.UserBird{
		{ID: 10, BirdName: "green", EggsPerHour: 1, DaysRemaining: 100, LastCollection: time.Now().Add(-3 * time.Hour)},
		{ID: 11, BirdName: "green", EggsPerHour: 1, DaysRemaining: 0, LastCollection: time.Now().Add(-3 * time.Hour)},
	}, nil)

	ready, counts, err := service.EggsToCollect(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"green": 3}, ready)
	assert.Equal(t, map[string]int{"green": 1}, counts)
}

func TestCreateBird(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Created",
			prepareMock: func(m *mocks) {
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "king").Return(nil, nil)
				m.birdRepo.EXPECT().Count(gomock.Any()).Return(5, nil)
				m.birdRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Bird{ID: 6, Name: "king"}, nil)
			},
		},
		{
			name: "Duplicate name",
			prepareMock: func(m *mocks) {
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "king").Return(&domain.Bird{ID: 6, Name: "king"}, nil)
			},
			expectedError: ErrBirdExists,
		},
		{
			name: "Catalog full",
			prepareMock: func(m *mocks) {
				m.birdRepo.EXPECT().FindByName(gomock.Any(), "king").Return(nil, nil)
				m.birdRepo.EXPECT().Count(gomock.Any()).Return(6, nil)
			},
			expectedError: ErrBirdLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			bird, err := service.CreateBird(context.Background(), "king", 5000, 50, 36000)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "king", bird.Name)
			}
		})
	}
}

func TestUpdateBird(t *testing.T) {
	service, m := NewMock(t)

	m.birdRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := service.UpdateBird(context.Background(), 99, 100, 1, 720, true)
	assert.ErrorIs(t, err, ErrBirdNotFound)
}
