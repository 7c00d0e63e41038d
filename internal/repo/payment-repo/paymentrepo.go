package paymentrepo

import (
	"context"
	"errors"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository stores the deposit and withdrawal request records.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const depositColumns = `id, reference, user_id, payeer_id, account_holder, usd_amount, gold_amount, conversion_rate, status, admin_note, created_at`

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(&d.ID, &d.Reference, &d.UserID, &d.PayeerID, &d.AccountHolder,
		&d.USDAmount, &d.GoldAmount, &d.ConversionRate, &d.Status, &d.AdminNote, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) CreateDeposit(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (reference, user_id, payeer_id, account_holder, usd_amount, gold_amount, conversion_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + depositColumns + `
	`
	created, err := scanDeposit(r.db.QueryRow(ctx, query, deposit.Reference, deposit.UserID,
		deposit.PayeerID, deposit.AccountHolder, deposit.USDAmount, deposit.GoldAmount, deposit.ConversionRate))
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindDeposit(ctx context.Context, id int) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1`
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// TransitionDeposit moves a pending deposit into a terminal status. The
// guard on the previous status lives in the statement itself: a request
// that already left pending matches no row and nil is returned.
func (r *Repository) TransitionDeposit(ctx context.Context, id int, status, adminNote string) (*domain.Deposit, error) {
	query := `
		UPDATE deposits
		SET status = $1, admin_note = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING ` + depositColumns + `
	`
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, status, adminNote, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't transition deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) depositsQuery(ctx context.Context, query string, args ...any) ([]domain.Deposit, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

func (r *Repository) DepositsByUserID(ctx context.Context, userID, limit int) ([]domain.Deposit, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.depositsQuery(ctx, query, userID, limit)
}

func (r *Repository) AllDeposits(ctx context.Context) ([]domain.Deposit, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		ORDER BY created_at DESC
	`
	return r.depositsQuery(ctx, query)
}

const withdrawalColumns = `id, reference, user_id, gold_amount, usd_amount, conversion_rate, payeer_account_id, payeer_account_name, status, admin_note, created_at`

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(&w.ID, &w.Reference, &w.UserID, &w.GoldAmount, &w.USDAmount,
		&w.ConversionRate, &w.PayeerAccountID, &w.PayeerAccountName, &w.Status, &w.AdminNote, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (reference, user_id, gold_amount, usd_amount, conversion_rate, payeer_account_id, payeer_account_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + withdrawalColumns + `
	`
	created, err := scanWithdrawal(r.db.QueryRow(ctx, query, withdrawal.Reference, withdrawal.UserID,
		withdrawal.GoldAmount, withdrawal.USDAmount, withdrawal.ConversionRate,
		withdrawal.PayeerAccountID, withdrawal.PayeerAccountName))
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindWithdrawal(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`
	withdrawal, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) TransitionWithdrawal(ctx context.Context, id int, status, adminNote string) (*domain.Withdrawal, error) {
	query := `
		UPDATE withdrawals
		SET status = $1, admin_note = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING ` + withdrawalColumns + `
	`
	withdrawal, err := scanWithdrawal(r.db.QueryRow(ctx, query, status, adminNote, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't transition withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) withdrawalsQuery(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, nil
}

func (r *Repository) WithdrawalsByUserID(ctx context.Context, userID, limit int) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.withdrawalsQuery(ctx, query, userID, limit)
}

func (r *Repository) AllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		ORDER BY created_at DESC
	`
	return r.withdrawalsQuery(ctx, query)
}

func (r *Repository) CountDepositsByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deposits WHERE status = $1`, status).Scan(&count)
	if err != nil {
		zap.L().Error("can't count deposits", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountWithdrawalsByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawals WHERE status = $1`, status).Scan(&count)
	if err != nil {
		zap.L().Error("can't count withdrawals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumApprovedDepositsUSD(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(usd_amount), 0) FROM deposits WHERE status = 'approved'`).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum approved deposits", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumApprovedWithdrawalsUSD(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(usd_amount), 0) FROM withdrawals WHERE status = 'approved'`).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum approved withdrawals", zap.Error(err))
		return 0, err
	}
	return total, nil
}
