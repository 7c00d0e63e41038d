package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const balanceColumns = `id, user_id, purchase_balance, withdraw_balance, referral_earnings, withdrawn_total`

func (r *Repository) scanBalance(row pgx.Row) (*domain.Balance, error) {
	var b domain.Balance
	err := row.Scan(&b.ID, &b.UserID, &b.PurchaseBalance, &b.WithdrawBalance, &b.ReferralEarnings, &b.WithdrawnTotal)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT ` + balanceColumns + `
        FROM balances
        WHERE user_id = $1
    `
	balance, err := r.scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// GetUserBalanceForUpdate locks the user's balance row for the rest of the
// surrounding transaction. Every mutation of a user's aggregate goes
// through this lock, which makes the balance row the per-user mutex.
func (r *Repository) GetUserBalanceForUpdate(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT ` + balanceColumns + `
        FROM balances
        WHERE user_id = $1
        FOR UPDATE
    `
	balance, err := r.scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// GetUserBalanceForUpdateNoWait is the sweep variant: if another writer
// holds the row the call fails immediately with a lock error instead of
// queueing, so the sweep can skip the user until the next period.
func (r *Repository) GetUserBalanceForUpdateNoWait(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT ` + balanceColumns + `
        FROM balances
        WHERE user_id = $1
        FOR UPDATE NOWAIT
    `
	balance, err := r.scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, purchase_balance, withdraw_balance, referral_earnings, withdrawn_total)
        VALUES ($1, 0, 0, 0, 0)
        RETURNING ` + balanceColumns + `
    `
	balance, err := r.scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (r *Repository) UpdateUserBalance(ctx context.Context, userID int, balance *domain.Balance) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET purchase_balance = $1, withdraw_balance = $2, referral_earnings = $3, withdrawn_total = $4
		WHERE user_id = $5
		RETURNING ` + balanceColumns + `
	`
	updated, err := r.scanBalance(r.db.QueryRow(ctx, query,
		balance.PurchaseBalance, balance.WithdrawBalance, balance.ReferralEarnings, balance.WithdrawnTotal, userID))
	if err != nil {
		zap.L().Error("failed to update user balance", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
