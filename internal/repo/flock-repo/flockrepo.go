package flockrepo

import (
	"context"
	"time"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/pg"
	"go.uber.org/zap"
)

// Repository stores the owned birds and the per-user egg stock.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.UserBird, error) {
	query := `
        SELECT ub.id, ub.user_id, ub.bird_id, b.name, b.eggs_per_hour,
               ub.purchase_date, ub.days_remaining, ub.last_collection, ub.uncollected_eggs
        FROM user_birds ub
        JOIN birds b ON b.id = ub.bird_id
        WHERE ub.user_id = $1
        ORDER BY ub.purchase_date ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch user birds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var birds []domain.UserBird
	for rows.Next() {
		var b domain.UserBird
		err := rows.Scan(&b.ID, &b.UserID, &b.BirdID, &b.BirdName, &b.EggsPerHour,
			&b.PurchaseDate, &b.DaysRemaining, &b.LastCollection, &b.UncollectedEggs)
		if err != nil {
			zap.L().Error("can't scan user bird row", zap.Error(err))
			return nil, err
		}
		birds = append(birds, b)
	}
	return birds, nil
}

func (r *Repository) Add(ctx context.Context, bird *domain.UserBird) error {
	query := `
        INSERT INTO user_birds (user_id, bird_id, purchase_date, days_remaining, last_collection, uncollected_eggs)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, bird.UserID, bird.BirdID, bird.PurchaseDate,
		bird.DaysRemaining, bird.LastCollection, bird.UncollectedEggs).Scan(&bird.ID)
	if err != nil {
		zap.L().Error("can't add user bird", zap.Error(err))
		return err
	}
	return nil
}

// UpdateAccrual advances a bird's collection clock and rewrites its pending
// counter in one statement.
func (r *Repository) UpdateAccrual(ctx context.Context, userBirdID int, lastCollection time.Time, uncollected int64) error {
	query := `
        UPDATE user_birds
        SET last_collection = $1, uncollected_eggs = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, lastCollection, uncollected, userBirdID); err != nil {
		zap.L().Error("can't update accrual state", zap.Error(err))
		return err
	}
	return nil
}

// SetUncollected rewrites only the pending counter, leaving the collection
// clock alone. The sweep uses it so manual collection stays the single
// point that advances last_collection.
func (r *Repository) SetUncollected(ctx context.Context, userBirdID int, uncollected int64) error {
	query := `
        UPDATE user_birds
        SET uncollected_eggs = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, uncollected, userBirdID); err != nil {
		zap.L().Error("can't update uncollected eggs", zap.Error(err))
		return err
	}
	return nil
}

// DecrementLifespan ages every living bird of the user by one day and
// returns how many rows were touched.
func (r *Repository) DecrementLifespan(ctx context.Context, userID int) (int64, error) {
	query := `
        UPDATE user_birds
        SET days_remaining = days_remaining - 1
        WHERE user_id = $1 AND days_remaining > 0
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't decrement lifespan", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UserIDsWithBirds(ctx context.Context) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM user_birds
        ORDER BY user_id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch bird owners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan owner id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) GetStock(ctx context.Context, userID int) ([]domain.StockEntry, error) {
	query := `
        SELECT user_id, bird_name, eggs
        FROM egg_stock
        WHERE user_id = $1
        ORDER BY bird_name ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch egg stock", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stock []domain.StockEntry
	for rows.Next() {
		var entry domain.StockEntry
		if err := rows.Scan(&entry.UserID, &entry.BirdName, &entry.Eggs); err != nil {
			zap.L().Error("can't scan stock row", zap.Error(err))
			return nil, err
		}
		stock = append(stock, entry)
	}
	return stock, nil
}

func (r *Repository) AddStock(ctx context.Context, userID int, birdName string, eggs int64) error {
	query := `
        INSERT INTO egg_stock (user_id, bird_name, eggs)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, bird_name) DO UPDATE SET eggs = egg_stock.eggs + EXCLUDED.eggs
    `
	if _, err := r.db.Exec(ctx, query, userID, birdName, eggs); err != nil {
		zap.L().Error("can't add egg stock", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ClearStock(ctx context.Context, userID int) error {
	query := `
        UPDATE egg_stock
        SET eggs = 0
        WHERE user_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't clear egg stock", zap.Error(err))
		return err
	}
	return nil
}
