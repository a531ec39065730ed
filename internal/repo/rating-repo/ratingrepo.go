package ratingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Upsert keeps exactly one row per (resource, session); a repeated submission overwrites the
// stored value.
func (r *Repository) Upsert(ctx context.Context, rating *domain.Rating) error {
	query := `
        INSERT INTO ratings (resource_id, user_session, rating)
        VALUES ($1, $2, $3)
        ON CONFLICT (resource_id, user_session)
        DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
        RETURNING id, created_at, updated_at
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, rating.ResourceID, rating.UserSession, rating.Rating)
		if err := row.Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt); err != nil {
			zap.L().Error("can't upsert rating", zap.String("resource_id", rating.ResourceID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindBySession(ctx context.Context, resourceID, userSession string) (*domain.Rating, error) {
	query := `
        SELECT id, resource_id, user_session, rating, created_at, updated_at
        FROM ratings
        WHERE resource_id = $1 AND user_session = $2
    `
	var rating domain.Rating
	err := r.db.QueryRow(ctx, query, resourceID, userSession).
		Scan(&rating.ID, &rating.ResourceID, &rating.UserSession, &rating.Rating, &rating.CreatedAt, &rating.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rating", zap.String("resource_id", resourceID), zap.Error(err))
		return nil, err
	}
	return &rating, nil
}

// ListValues returns every rating row with only the fields needed for aggregation.
func (r *Repository) ListValues(ctx context.Context) ([]domain.Rating, error) {
	query := `
        SELECT resource_id, rating
        FROM ratings
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ratings := make([]domain.Rating, 0)
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(&rating.ResourceID, &rating.Rating); err != nil {
			zap.L().Error("can't scan rating row", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate ratings", zap.Error(err))
		return nil, err
	}
	return ratings, nil
}
