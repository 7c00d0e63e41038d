package dto

import "time"

type DepositRequestDTO struct {
	PayeerID      string  `json:"payeer_id" validate:"required" example:"P1234567"`
	AccountHolder string  `json:"account_holder" validate:"required"`
	USDAmount     float64 `json:"usd_amount" validate:"required,gt=0" example:"10"`
}

type DepositDTO struct {
	ID             int       `json:"id"`
	Reference      string    `json:"reference"`
	UserID         int       `json:"user_id,omitempty"`
	PayeerID       string    `json:"payeer_id"`
	USDAmount      float64   `json:"usd_amount"`
	GoldAmount     float64   `json:"gold_amount"`
	ConversionRate float64   `json:"conversion_rate"`
	Status         string    `json:"status" example:"pending"`
	AdminNote      string    `json:"admin_note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type WithdrawRequestDTO struct {
	GoldAmount        float64 `json:"gold_amount" validate:"required,gt=0" example:"7000"`
	PayeerAccountID   string  `json:"payeer_account_id" validate:"required" example:"P1234567"`
	PayeerAccountName string  `json:"payeer_account_name" validate:"required"`
}

type WithdrawalDTO struct {
	ID                int       `json:"id"`
	Reference         string    `json:"reference"`
	UserID            int       `json:"user_id,omitempty"`
	GoldAmount        float64   `json:"gold_amount"`
	USDAmount         float64   `json:"usd_amount"`
	ConversionRate    float64   `json:"conversion_rate"`
	PayeerAccountID   string    `json:"payeer_account_id"`
	PayeerAccountName string    `json:"payeer_account_name"`
	Status            string    `json:"status" example:"pending"`
	AdminNote         string    `json:"admin_note,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type RatesResponseDTO struct {
	USDToGold  float64 `json:"usd_to_gold" example:"7000"`
	EggsToGold float64 `json:"eggs_to_gold" example:"0.01"`
}
