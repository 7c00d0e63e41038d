package dto

import "time"

type BirdDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name" example:"green"`
	Price        float64 `json:"price" example:"100"`
	EggsPerHour  float64 `json:"eggs_per_hour" example:"1"`
	EggsPerMonth float64 `json:"eggs_per_month" example:"720"`
	IsActive     bool    `json:"is_active"`
}

type OwnedBirdDTO struct {
	ID              int       `json:"id"`
	Bird            string    `json:"bird" example:"green"`
	PurchaseDate    time.Time `json:"purchase_date"`
	DaysRemaining   int       `json:"days_remaining" example:"120"`
	LastCollection  time.Time `json:"last_collection"`
	UncollectedEggs int64     `json:"uncollected_eggs"`
	IsAlive         bool      `json:"is_alive"`
}

type MyBirdsResponseDTO struct {
	Birds      []OwnedBirdDTO `json:"birds"`
	Quantities map[string]int `json:"quantities"`
}

type BuyBirdRequestDTO struct {
	Bird string `json:"bird" validate:"required" example:"green"`
}

type BuyBirdResponseDTO struct {
	Message    string  `json:"message"`
	Bird       string  `json:"bird"`
	Price      float64 `json:"price"`
	NewBalance float64 `json:"new_balance"`
}

type CollectResponseDTO struct {
	Message   string           `json:"message"`
	Collected map[string]int64 `json:"collected"`
	Wait      map[string]int   `json:"wait_minutes,omitempty"`
}

type EggsToCollectResponseDTO struct {
	Ready map[string]int64 `json:"ready"`
	Birds map[string]int   `json:"birds"`
}
