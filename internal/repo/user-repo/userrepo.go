package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/jackc/pgx/v5"
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

const userColumns = `id, username, email, password_hash, is_admin, referral_code, referred_by, last_bonus_claim, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin,
		&u.ReferralCode, &u.ReferredBy, &u.LastBonusClaim, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code)
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, is_admin, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.IsAdmin, user.ReferralCode, user.ReferredBy).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) SetLastBonusClaim(ctx context.Context, userID int, claimedAt time.Time) error {
	query := `
		UPDATE users
		SET last_bonus_claim = $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, claimedAt, userID); err != nil {
		zap.L().Error("can't set last bonus claim", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPlayers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_admin = FALSE
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *Repository) CountPlayers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_admin = FALSE`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateReferral(ctx context.Context, referrerID, referredUserID int) error {
	query := `
		INSERT INTO referrals (referrer_id, referred_user_id)
		VALUES ($1, $2)
	`
	if _, err := r.db.Exec(ctx, query, referrerID, referredUserID); err != nil {
		zap.L().Error("can't create referral", zap.Error(err))
		return err
	}
	return nil
}

// AddReferralCommission advances the accumulators on the referral relation
// after a referred user's purchase.
func (r *Repository) AddReferralCommission(ctx context.Context, referrerID, referredUserID int, commission, purchase float64) error {
	query := `
		UPDATE referrals
		SET commission_earned = commission_earned + $1, total_purchases = total_purchases + $2
		WHERE referrer_id = $3 AND referred_user_id = $4
	`
	if _, err := r.db.Exec(ctx, query, commission, purchase, referrerID, referredUserID); err != nil {
		zap.L().Error("can't update referral commission", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindReferralsByReferrer(ctx context.Context, referrerID int) ([]domain.ReferralInfo, error) {
	query := `
		SELECT u.username, u.created_at, r.commission_earned, r.total_purchases
		FROM referrals r
		JOIN users u ON u.id = r.referred_user_id
		WHERE r.referrer_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't fetch referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.ReferralInfo
	for rows.Next() {
		var ref domain.ReferralInfo
		err := rows.Scan(&ref.Username, &ref.RegisteredAt, &ref.CommissionEarned, &ref.TotalPurchases)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, nil
}
