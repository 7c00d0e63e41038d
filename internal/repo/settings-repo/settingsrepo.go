package settingsrepo

import (
	"context"
	"errors"

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

func (r *Repository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query := `
		SELECT key, value, description
		FROM settings
		WHERE key = $1
	`
	var s domain.Setting
	err := r.db.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get setting", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Set(ctx context.Context, key string, value float64) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		zap.L().Error("can't set setting", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) All(ctx context.Context) ([]domain.Setting, error) {
	query := `
		SELECT key, value, description
		FROM settings
		ORDER BY key ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Description); err != nil {
			zap.L().Error("can't scan setting row", zap.Error(err))
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}
