package birdrepo

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

const birdColumns = `id, name, price, eggs_per_hour, eggs_per_month, is_active, created_at`

func scanBird(row pgx.Row) (*domain.Bird, error) {
	var b domain.Bird
	err := row.Scan(&b.ID, &b.Name, &b.Price, &b.EggsPerHour, &b.EggsPerMonth, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM birds WHERE name = $1`
	bird, err := scanBird(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bird", zap.Error(err))
		return nil, err
	}
	return bird, nil
}

func (r *Repository) findMany(ctx context.Context, query string) ([]domain.Bird, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch birds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var birds []domain.Bird
	for rows.Next() {
		bird, err := scanBird(rows)
		if err != nil {
			zap.L().Error("can't scan bird row", zap.Error(err))
			return nil, err
		}
		birds = append(birds, *bird)
	}
	return birds, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Bird, error) {
	return r.findMany(ctx, `SELECT `+birdColumns+` FROM birds WHERE is_active = TRUE ORDER BY price ASC`)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Bird, error) {
	return r.findMany(ctx, `SELECT `+birdColumns+` FROM birds ORDER BY created_at DESC`)
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM birds`).Scan(&count); err != nil {
		zap.L().Error("can't count birds", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Create(ctx context.Context, bird *domain.Bird) (*domain.Bird, error) {
	query := `
		INSERT INTO birds (name, price, eggs_per_hour, eggs_per_month)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + birdColumns + `
	`
	created, err := scanBird(r.db.QueryRow(ctx, query, bird.Name, bird.Price, bird.EggsPerHour, bird.EggsPerMonth))
	if err != nil {
		zap.L().Error("can't create bird", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, bird *domain.Bird) (*domain.Bird, error) {
	query := `
		UPDATE birds
		SET price = $1, eggs_per_hour = $2, eggs_per_month = $3, is_active = $4
		WHERE id = $5
		RETURNING ` + birdColumns + `
	`
	updated, err := scanBird(r.db.QueryRow(ctx, query, bird.Price, bird.EggsPerHour, bird.EggsPerMonth, bird.IsActive, bird.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update bird", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
