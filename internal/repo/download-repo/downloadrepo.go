package downloadrepo

import (
	"context"

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

// Save appends a download event. Rows are never updated or deleted.
func (r *Repository) Save(ctx context.Context, download *domain.Download) error {
	query := `
        INSERT INTO downloads (resource_id, user_session)
        VALUES ($1, $2)
        RETURNING id, downloaded_at
    `
	err := r.db.QueryRow(ctx, query, download.ResourceID, download.UserSession).
		Scan(&download.ID, &download.DownloadedAt)
	if err != nil {
		zap.L().Error("can't save download", zap.String("resource_id", download.ResourceID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListStats(ctx context.Context) ([]domain.DownloadStats, error) {
	query := `
        SELECT resource_id, unique_downloads, total_downloads
        FROM resource_download_stats
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list download stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stats := make([]domain.DownloadStats, 0)
	for rows.Next() {
		var s domain.DownloadStats
		if err := rows.Scan(&s.ResourceID, &s.UniqueDownloads, &s.TotalDownloads); err != nil {
			zap.L().Error("can't scan download stats row", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate download stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
