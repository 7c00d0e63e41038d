package dto

import "time"

type CreateBirdRequestDTO struct {
	Name         string  `json:"name" validate:"required" example:"green"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	EggsPerHour  float64 `json:"eggs_per_hour" validate:"required,gt=0"`
	EggsPerMonth float64 `json:"eggs_per_month" validate:"required,gt=0"`
}

type UpdateBirdRequestDTO struct {
	Price        float64 `json:"price" validate:"required,gt=0"`
	EggsPerHour  float64 `json:"eggs_per_hour" validate:"required,gt=0"`
	EggsPerMonth float64 `json:"eggs_per_month" validate:"required,gt=0"`
	IsActive     bool    `json:"is_active"`
}

type UpdateStatusRequestDTO struct {
	Status    string `json:"status" validate:"required,oneof=approved declined" example:"approved"`
	AdminNote string `json:"admin_note,omitempty"`
}

type UpdateRateRequestDTO struct {
	Key   string  `json:"key" validate:"required" example:"usdToGoldRate"`
	Value float64 `json:"value" validate:"required,gt=0" example:"7000"`
}

type PlayerDTO struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type AdminDashboardResponseDTO struct {
	TotalPlayers       int     `json:"total_players"`
	PendingDeposits    int     `json:"pending_deposits"`
	PendingWithdrawals int     `json:"pending_withdrawals"`
	TotalDepositedUSD  float64 `json:"total_deposited_usd"`
	TotalWithdrawnUSD  float64 `json:"total_withdrawn_usd"`
}
