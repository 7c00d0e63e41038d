package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	balanceRepo  *MockBalanceRepo
	stockRepo    *MockStockRepo
	userRepo     *MockUserRepo
	bonusRepo    *MockBonusRepo
	settingsRepo *MockSettingsRepo
	trm          *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		balanceRepo:  NewMockBalanceRepo(ctrl),
		stockRepo:    NewMockStockRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		bonusRepo:    NewMockBonusRepo(ctrl),
		settingsRepo: NewMockSettingsRepo(ctrl),
		trm:          pg.NewMockTXManager(ctrl),
	}
	service := New(m.balanceRepo, m.stockRepo, m.userRepo, m.bonusRepo, m.settingsRepo, m.trm)
	return service, m
}

func beginPassthrough(trm *pg.MockTXManager) {
	trm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestGetBalance(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID:          1,
					PurchaseBalance: 100.0,
					WithdrawBalance: 50.0,
				}, nil)
			},
			expectedBalance: &domain.Balance{
				UserID:          1,
				PurchaseBalance: 100.0,
				WithdrawBalance: 50.0,
			},
		},
		{
			name:   "Missing balance row",
			userID: 2,
			prepareMock: func() {
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Error retrieving balance",
			userID: 1,
			prepareMock: func() {
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestSell(t *testing.T) {
	tests := []struct {
		name           string
		prepareMock    func(m *mocks)
		expectedResult *SellResult
		expectedError  error
	}{
		{
			name: "Split credited 30/70",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.stockRepo.EXPECT().GetStock(gomock.Any(), 1).Return([]domain.StockEntry{
					{UserID: 1, BirdName: "green", Eggs: 500},
					{UserID: 1, BirdName: "brown", Eggs: 500},
				}, nil)
				m.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingEggsToGoldRate).Return(&domain.Setting{Key: domain.SettingEggsToGoldRate, Value: 0.01}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{
					UserID:          1,
					PurchaseBalance: 3.0,
					WithdrawBalance: 7.0,
				}).Return(&domain.Balance{UserID: 1, PurchaseBalance: 3.0, WithdrawBalance: 7.0}, nil)
				m.stockRepo.EXPECT().ClearStock(gomock.Any(), 1).Return(nil)
			},
			expectedResult: &SellResult{
				TotalEggs:    1000,
				TotalGold:    10.0,
				PurchaseGold: 3.0,
				WithdrawGold: 7.0,
				EggsByType:   map[string]int64{"green": 500, "brown": 500},
			},
		},
		{
			name: "Empty stock is a no-op",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.stockRepo.EXPECT().GetStock(gomock.Any(), 1).Return(nil, nil)
			},
			expectedResult: &SellResult{EggsByType: map[string]int64{}},
		},
		{
			name: "Missing user",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.Sell(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestExchange(t *testing.T) {
	tests := []struct {
		name           string
		amount         float64
		prepareMock    func(m *mocks)
		expectedResult *ExchangeResult
		expectedError  error
	}{
		{
			name:   "Exchange with markup",
			amount: 100,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{
					UserID:          1,
					PurchaseBalance: 10,
					WithdrawBalance: 150,
				}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{
					UserID:          1,
					PurchaseBalance: 113,
					WithdrawBalance: 50,
				}).Return(&domain.Balance{UserID: 1, PurchaseBalance: 113, WithdrawBalance: 50}, nil)
			},
			expectedResult: &ExchangeResult{
				ExchangedAmount:    100,
				ReceivedAmount:     103,
				NewPurchaseBalance: 113,
				NewWithdrawBalance: 50,
			},
		},
		{
			name:   "Amount above withdraw balance",
			amount: 200,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{
					UserID:          1,
					WithdrawBalance: 150,
				}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Zero amount rejected",
			amount: 0,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{
					UserID:          1,
					WithdrawBalance: 150,
				}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.Exchange(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestClaimBonus(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour)
	stale := time.Now().Add(-25 * time.Hour)

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
		hoursLeft     int
		amount        float64
	}{
		{
			name: "First claim",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, PurchaseBalance: 100}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, gomock.Any()).Return(&domain.Balance{UserID: 1, PurchaseBalance: 142}, nil)
				m.userRepo.EXPECT().SetLastBonusClaim(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.bonusRepo.EXPECT().Create(gomock.Any(), &domain.Bonus{UserID: 1, Amount: 42}).Return(nil)
			},
			amount: 42,
		},
		{
			name: "Claim after cooldown expired",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, LastBonusClaim: &stale}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, gomock.Any()).Return(&domain.Balance{UserID: 1, PurchaseBalance: 42}, nil)
				m.userRepo.EXPECT().SetLastBonusClaim(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.bonusRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			amount: 42,
		},
		{
			name: "Claim within cooldown",
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, LastBonusClaim: &recent}, nil)
			},
			expectedError: &CooldownError{},
			hoursLeft:     22,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			service.randInt = func(n int) int { return 32 } // 32 + bonusMin = 42
			tt.prepareMock(m)

			result, err := service.ClaimBonus(context.Background(), 1)
			if tt.expectedError != nil {
				var cooldown *CooldownError
				assert.ErrorAs(t, err, &cooldown)
				assert.Equal(t, tt.hoursLeft, cooldown.HoursLeft)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, result.Amount)
			}
		})
	}
}

func TestReferrals(t *testing.T) {
	service, m := NewMock(t)

	registered := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, ReferralCode: "BOB3f9a1c"}, nil)
	m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, ReferralEarnings: 12.5}, nil)
	m.userRepo.EXPECT().FindReferralsByReferrer(gomock.Any(), 1).Return([]domain.ReferralInfo{
		{Username: "alice", RegisteredAt: registered, CommissionEarned: 12.5, TotalPurchases: 250},
	}, nil)

	overview, err := service.Referrals(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "BOB3f9a1c", overview.ReferralCode)
	assert.Equal(t, 12.5, overview.TotalEarnings)
	assert.Len(t, overview.Referrals, 1)
}

func TestBonusHistory(t *testing.T) {
	service, m := NewMock(t)

	m.bonusRepo.EXPECT().FindByUserID(gomock.Any(), 1, bonusHistoryLimit).Return([]domain.Bonus{
		{ID: 1, UserID: 1, Amount: 42},
	}, nil)

	bonuses, err := service.BonusHistory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, bonuses, 1)
}

func TestSellDefaultsRate(t *testing.T) {
	service, m := NewMock(t)

	beginPassthrough(m.trm)
	m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
	m.stockRepo.EXPECT().GetStock(gomock.Any(), 1).Return([]domain.StockEntry{{UserID: 1, BirdName: "green", Eggs: 100}}, nil)
	m.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingEggsToGoldRate).Return(nil, nil)
	m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, gomock.Any()).Return(&domain.Balance{UserID: 1}, nil)
	m.stockRepo.EXPECT().ClearStock(gomock.Any(), 1).Return(nil)

	result, err := service.Sell(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, result.TotalGold)
}
