package resourcerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]domain.Resource, error) {
	query := `
        SELECT id, title, description, category, tags, suggested_price, drive_file_id, thumbnail_url, created_at, updated_at
        FROM resources
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list resources", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	resources := make([]domain.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			zap.L().Error("can't scan resource row", zap.Error(err))
			return nil, err
		}
		resources = append(resources, *resource)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate resources", zap.Error(err))
		return nil, err
	}
	return resources, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := `
        SELECT id, title, description, category, tags, suggested_price, drive_file_id, thumbnail_url, created_at, updated_at
        FROM resources
        WHERE id = $1
    `
	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find resource", zap.String("resource_id", id), zap.Error(err))
		return nil, err
	}
	return resource, nil
}

func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM resources WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		zap.L().Error("can't check resource existence", zap.String("resource_id", id), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func scanResource(row pgx.Row) (*domain.Resource, error) {
	var (
		resource domain.Resource
		category string
	)
	err := row.Scan(
		&resource.ID,
		&resource.Title,
		&resource.Description,
		&category,
		&resource.Tags,
		&resource.SuggestedPrice,
		&resource.DriveFileID,
		&resource.ThumbnailURL,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	resource.Category = domain.Category(category)
	if resource.Tags == nil {
		resource.Tags = []string{}
	}
	return &resource, nil
}
