package paymentservice

import (
	"context"
	"testing"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	paymentRepo  *MockPaymentRepo
	balanceRepo  *walletservice.MockBalanceRepo
	userRepo     *MockUserRepo
	settingsRepo *MockSettingsRepo
	trm          *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		paymentRepo:  NewMockPaymentRepo(ctrl),
		balanceRepo:  walletservice.NewMockBalanceRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		settingsRepo: NewMockSettingsRepo(ctrl),
		trm:          pg.NewMockTXManager(ctrl),
	}
	service := New(m.paymentRepo, m.balanceRepo, m.userRepo, m.settingsRepo, m.trm)
	return service, m
}

func beginPassthrough(trm *pg.MockTXManager) {
	trm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreateDeposit(t *testing.T) {
	tests := []struct {
		name          string
		payeerID      string
		usdAmount     float64
		prepareMock   func(m *mocks)
		expectedGold  float64
		expectedError error
	}{
		{
			name:      "Deposit snapshots the current rate",
			payeerID:  "P1234567",
			usdAmount: 10,
			prepareMock: func(m *mocks) {
				m.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingUSDToGoldRate).
					Return(&domain.Setting{Key: domain.SettingUSDToGoldRate, Value: 7000}, nil)
				m.paymentRepo.EXPECT().CreateDeposit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *domain.Deposit) (*domain.Deposit, error) {
						assert.Equal(t, 70000.0, d.GoldAmount)
						assert.Equal(t, 7000.0, d.ConversionRate)
						assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", d.Reference.String())
						return d, nil
					})
			},
			expectedGold: 70000,
		},
		{
			name:          "Invalid payeer account",
			payeerID:      "X1234567",
			usdAmount:     10,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAccount,
		},
		{
			name:          "Non-positive amount",
			payeerID:      "P1234567",
			usdAmount:     0,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			deposit, err := service.CreateDeposit(context.Background(), 1, tt.payeerID, "John Doe", tt.usdAmount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedGold, deposit.GoldAmount)
			}
		})
	}
}

func TestCreateWithdrawal(t *testing.T) {
	tests := []struct {
		name          string
		goldAmount    float64
		prepareMock   func(m *mocks)
		expectedUSD   float64
		expectedError error
	}{
		{
			name:       "Debit and conversion at snapshot rate",
			goldAmount: 7000,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, WithdrawBalance: 10000}, nil)
				m.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingUSDToGoldRate).
					Return(&domain.Setting{Key: domain.SettingUSDToGoldRate, Value: 7000}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{
					UserID:          1,
					WithdrawBalance: 3000,
				}).Return(&domain.Balance{UserID: 1, WithdrawBalance: 3000}, nil)
				m.paymentRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.Equal(t, 1.0, w.USDAmount)
						assert.Equal(t, 7000.0, w.GoldAmount)
						return w, nil
					})
			},
			expectedUSD: 1,
		},
		{
			name:          "Below the minimum",
			goldAmount:    6999,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrBelowMinimum,
		},
		{
			name:       "Insufficient withdraw balance",
			goldAmount: 7000,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, WithdrawBalance: 500}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			withdrawal, err := service.CreateWithdrawal(context.Background(), 1, tt.goldAmount, "P1234567", "John Doe")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUSD, withdrawal.USDAmount)
			}
		})
	}
}

func TestUpdateDepositStatus(t *testing.T) {
	pendingDeposit := &domain.Deposit{ID: 5, UserID: 1, GoldAmount: 70000, Status: StatusPending}

	tests := []struct {
		name          string
		status        string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "Approval credits purchase balance once",
			status: StatusApproved,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.paymentRepo.EXPECT().FindDeposit(gomock.Any(), 5).Return(pendingDeposit, nil)
				m.paymentRepo.EXPECT().TransitionDeposit(gomock.Any(), 5, StatusApproved, "ok").
					Return(&domain.Deposit{ID: 5, UserID: 1, GoldAmount: 70000, Status: StatusApproved}, nil)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, PurchaseBalance: 100}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{
					UserID:          1,
					PurchaseBalance: 70100,
				}).Return(&domain.Balance{UserID: 1, PurchaseBalance: 70100}, nil)
			},
		},
		{
			name:   "Decline does not touch the balance",
			status: StatusDeclined,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.paymentRepo.EXPECT().FindDeposit(gomock.Any(), 5).Return(pendingDeposit, nil)
				m.paymentRepo.EXPECT().TransitionDeposit(gomock.Any(), 5, StatusDeclined, "ok").
					Return(&domain.Deposit{ID: 5, UserID: 1, GoldAmount: 70000, Status: StatusDeclined}, nil)
			},
		},
		{
			name:   "Second approval finds no pending row",
			status: StatusApproved,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.paymentRepo.EXPECT().FindDeposit(gomock.Any(), 5).
					Return(&domain.Deposit{ID: 5, UserID: 1, GoldAmount: 70000, Status: StatusApproved}, nil)
				m.paymentRepo.EXPECT().TransitionDeposit(gomock.Any(), 5, StatusApproved, "ok").Return(nil, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:   "Unknown request",
			status: StatusApproved,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.paymentRepo.EXPECT().FindDeposit(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:          "Bad status value",
			status:        "paid",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			_, err := service.UpdateDepositStatus(context.Background(), 5, tt.status, "ok")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateWithdrawalStatus(t *testing.T) {
	pending := &domain.Withdrawal{ID: 9, UserID: 1, GoldAmount: 7000, USDAmount: 1, Status: StatusPending}

	tests := []struct {
		name        string
		status      string
		prepareMock func(m *mocks)
	}{
		{
			name:   "Approval accumulates paid-out USD",
			status: StatusApproved,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.paymentRepo.EXPECT().FindWithdrawal(gomock.Any(), 9).Return(pending, nil)
				m.paymentRepo.EXPECT().TransitionWithdrawal(gomock.Any(), 9, StatusApproved, "").
					Return(&domain.Withdrawal{ID: 9, UserID: 1, GoldAmount: 7000, USDAmount: 1, Status: StatusApproved}, nil)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, WithdrawnTotal: 2}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{
					UserID:         1,
					WithdrawnTotal: 3,
				}).Return(&domain.Balance{UserID: 1, WithdrawnTotal: 3}, nil)
			},
		},
		{
			name:   "Decline refunds the debited gold",
			status: StatusDeclined,
			prepareMock: func(m *mocks) {
				beginPassthrough(m.trm)
				m.paymentRepo.EXPECT().FindWithdrawal(gomock.Any(), 9).Return(pending, nil)
				m.paymentRepo.EXPECT().TransitionWithdrawal(gomock.Any(), 9, StatusDeclined, "").
					Return(&domain.Withdrawal{ID: 9, UserID: 1, GoldAmount: 7000, USDAmount: 1, Status: StatusDeclined}, nil)
				m.balanceRepo.EXPECT().GetUserBalanceForUpdate(gomock.Any(), 1).
					Return(&domain.Balance{UserID: 1, WithdrawBalance: 100}, nil)
				m.balanceRepo.EXPECT().UpdateUserBalance(gomock.Any(), 1, &domain.Balance{
					UserID:          1,
					WithdrawBalance: 7100,
				}).Return(&domain.Balance{UserID: 1, WithdrawBalance: 7100}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			updated, err := service.UpdateWithdrawalStatus(context.Background(), 9, tt.status, "")
			assert.NoError(t, err)
			assert.Equal(t, tt.status, updated.Status)
		})
	}
}

func TestRates(t *testing.T) {
	service, m := NewMock(t)

	m.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingUSDToGoldRate).Return(nil, nil)
	m.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingEggsToGoldRate).Return(nil, nil)

	rates, err := service.Rates(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7000.0, rates.USDToGold)
	assert.Equal(t, 0.01, rates.EggsToGold)
}

func TestUpdateRate(t *testing.T) {
	service, m := NewMock(t)

	m.settingsRepo.EXPECT().Set(gomock.Any(), domain.SettingUSDToGoldRate, 6500.0).Return(nil)
	assert.NoError(t, service.UpdateRate(context.Background(), domain.SettingUSDToGoldRate, 6500))

	assert.ErrorIs(t, service.UpdateRate(context.Background(), "goldToLead", 1), ErrUnknownRateKey)
	assert.ErrorIs(t, service.UpdateRate(context.Background(), domain.SettingUSDToGoldRate, 0), ErrInvalidAmount)
}

func TestDashboard(t *testing.T) {
	service, m := NewMock(t)

	m.userRepo.EXPECT().CountPlayers(gomock.Any()).Return(12, nil)
	m.paymentRepo.EXPECT().CountDepositsByStatus(gomock.Any(), StatusPending).Return(3, nil)
	m.paymentRepo.EXPECT().CountWithdrawalsByStatus(gomock.Any(), StatusPending).Return(1, nil)
	m.paymentRepo.EXPECT().SumApprovedDepositsUSD(gomock.Any()).Return(250.5, nil)
	m.paymentRepo.EXPECT().SumApprovedWithdrawalsUSD(gomock.Any()).Return(80.0, nil)

	stats, err := service.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalPlayers:       12,
		PendingDeposits:    3,
		PendingWithdrawals: 1,
		TotalDepositedUSD:  250.5,
		TotalWithdrawnUSD:  80.0,
	}, stats)
}
