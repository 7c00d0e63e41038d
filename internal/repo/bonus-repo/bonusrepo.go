package bonusrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, bonus *domain.Bonus) error {
	query := `
		INSERT INTO bonuses (user_id, amount)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, bonus.UserID, bonus.Amount).Scan(&bonus.ID, &bonus.CreatedAt)
	if err != nil {
		zap.L().Error("can't save bonus", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit int) ([]domain.Bonus, error) {
	query := `
		SELECT id, user_id, amount, created_at
		FROM bonuses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't fetch bonuses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bonuses []domain.Bonus
	for rows.Next() {
		var b domain.Bonus
		if err := rows.Scan(&b.ID, &b.UserID, &b.Amount, &b.CreatedAt); err != nil {
			zap.L().Error("can't scan bonus row", zap.Error(err))
			return nil, err
		}
		bonuses = append(bonuses, b)
	}
	return bonuses, nil
}
