package dto

import "time"

type BalanceResponseDTO struct {
	PurchaseBalance  float64 `json:"purchase_balance" example:"500.5"`
	WithdrawBalance  float64 `json:"withdraw_balance" example:"42"`
	ReferralEarnings float64 `json:"referral_earnings"`
	WithdrawnTotal   float64 `json:"withdrawn_total"`
}

type StockEntryDTO struct {
	Bird string `json:"bird" example:"green"`
	Eggs int64  `json:"eggs" example:"17"`
}

type SellResponseDTO struct {
	Message      string  `json:"message"`
	TotalEggs    int64   `json:"total_eggs"`
	TotalGold    float64 `json:"total_gold"`
	PurchaseGold float64 `json:"purchase_gold"`
	WithdrawGold float64 `json:"withdraw_gold"`
}

type ExchangeRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"100"`
}

type ExchangeResponseDTO struct {
	Message            string  `json:"message"`
	ExchangedAmount    float64 `json:"exchanged_amount"`
	ReceivedAmount     float64 `json:"received_amount"`
	NewPurchaseBalance float64 `json:"new_purchase_balance"`
	NewWithdrawBalance float64 `json:"new_withdraw_balance"`
}

type BonusResponseDTO struct {
	Message    string  `json:"message"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"new_balance"`
}

type BonusHistoryItemDTO struct {
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type ReferralInfoDTO struct {
	Username         string    `json:"username"`
	RegisteredAt     time.Time `json:"registered_at"`
	CommissionEarned float64   `json:"commission_earned"`
	TotalPurchases   float64   `json:"total_purchases"`
}

type ReferralsResponseDTO struct {
	ReferralCode  string            `json:"referral_code"`
	TotalEarnings float64           `json:"total_earnings"`
	Referrals     []ReferralInfoDTO `json:"referrals"`
}

type DashboardResponseDTO struct {
	Balance    BalanceResponseDTO `json:"balance"`
	Birds      []OwnedBirdDTO     `json:"birds"`
	Quantities map[string]int     `json:"quantities"`
	Stock      []StockEntryDTO    `json:"stock"`
}
