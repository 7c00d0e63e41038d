package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             int        `db:"id"`
	Username       string     `db:"username"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	IsAdmin        bool       `db:"is_admin"`
	ReferralCode   string     `db:"referral_code"`
	ReferredBy     *int       `db:"referred_by"`
	LastBonusClaim *time.Time `db:"last_bonus_claim"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Balance struct {
	ID               int     `db:"id"`
	UserID           int     `db:"user_id"`
	PurchaseBalance  float64 `db:"purchase_balance"`
	WithdrawBalance  float64 `db:"withdraw_balance"`
	ReferralEarnings float64 `db:"referral_earnings"`
	WithdrawnTotal   float64 `db:"withdrawn_total"`
}

type Bird struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Price        float64   `db:"price"`
	EggsPerHour  float64   `db:"eggs_per_hour"`
	EggsPerMonth float64   `db:"eggs_per_month"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserBird is one owned bird. BirdName and EggsPerHour are joined in from
// the catalog. A bird with DaysRemaining == 0 is dead and never produces
// again, but keeps its row for accounting.
type UserBird struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	BirdID          int       `db:"bird_id"`
	BirdName        string    `db:"bird_name"`
	EggsPerHour     float64   `db:"eggs_per_hour"`
	PurchaseDate    time.Time `db:"purchase_date"`
	DaysRemaining   int       `db:"days_remaining"`
	LastCollection  time.Time `db:"last_collection"`
	UncollectedEggs int64     `db:"uncollected_eggs"`
}

func (b *UserBird) IsAlive() bool {
	return b.DaysRemaining > 0
}

type StockEntry struct {
	UserID   int    `db:"user_id"`
	BirdName string `db:"bird_name"`
	Eggs     int64  `db:"eggs"`
}

type Referral struct {
	ID               int       `db:"id"`
	ReferrerID       int       `db:"referrer_id"`
	ReferredUserID   int       `db:"referred_user_id"`
	CommissionEarned float64   `db:"commission_earned"`
	TotalPurchases   float64   `db:"total_purchases"`
	CreatedAt        time.Time `db:"created_at"`
}

// ReferralInfo is the referrer-facing projection of a Referral joined with
// the referred user.
type ReferralInfo struct {
	Username         string    `db:"username"`
	RegisteredAt     time.Time `db:"registered_at"`
	CommissionEarned float64   `db:"commission_earned"`
	TotalPurchases   float64   `db:"total_purchases"`
}

type Deposit struct {
	ID             int       `db:"id"`
	Reference      uuid.UUID `db:"reference"`
	UserID         int       `db:"user_id"`
	PayeerID       string    `db:"payeer_id"`
	AccountHolder  string    `db:"account_holder"`
	USDAmount      float64   `db:"usd_amount"`
	GoldAmount     float64   `db:"gold_amount"`
	ConversionRate float64   `db:"conversion_rate"`
	Status         string    `db:"status"`
	AdminNote      string    `db:"admin_note"`
	CreatedAt      time.Time `db:"created_at"`
}

type Withdrawal struct {
	ID                int       `db:"id"`
	Reference         uuid.UUID `db:"reference"`
	UserID            int       `db:"user_id"`
	GoldAmount        float64   `db:"gold_amount"`
	USDAmount         float64   `db:"usd_amount"`
	ConversionRate    float64   `db:"conversion_rate"`
	PayeerAccountID   string    `db:"payeer_account_id"`
	PayeerAccountName string    `db:"payeer_account_name"`
	Status            string    `db:"status"`
	AdminNote         string    `db:"admin_note"`
	CreatedAt         time.Time `db:"created_at"`
}

type Bonus struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

// Settings keys for the admin-editable conversion rates.
const (
	SettingUSDToGoldRate  = "usdToGoldRate"
	SettingEggsToGoldRate = "eggsToGoldRate"
)

type Setting struct {
	Key         string  `db:"key"`
	Value       float64 `db:"value"`
	Description string  `db:"description"`
}
