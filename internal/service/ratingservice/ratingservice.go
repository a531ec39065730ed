package ratingservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
)

//go:generate mockgen -source=ratingservice.go -destination=mock_ratingservice.go -package=ratingservice

type Repo interface {
	Upsert(ctx context.Context, rating *domain.Rating) error
	FindBySession(ctx context.Context, resourceID, userSession string) (*domain.Rating, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	MinRating = 1
	MaxRating = 5
)

// SubmitRating stores the session's rating for a resource, replacing an earlier one.
// Out-of-range ratings are rejected without touching storage.
func (s *Service) SubmitRating(ctx context.Context, sessionID, resourceID string, rating int) bool {
	if rating < MinRating || rating > MaxRating {
		zap.L().Info("rating out of range", zap.String("resource_id", resourceID), zap.Int("rating", rating))
		return false
	}
	if sessionID == "" || resourceID == "" {
		zap.L().Info("rating without session or resource", zap.String("resource_id", resourceID))
		return false
	}

	err := s.repo.Upsert(ctx, &domain.Rating{
		ResourceID:  resourceID,
		UserSession: sessionID,
		Rating:      rating,
	})
	if err != nil {
		zap.L().Error("failed to submit rating", zap.String("resource_id", resourceID), zap.Error(err))
		return false
	}
	return true
}

// GetUserRating returns the session's rating for a resource, or 0 when there is none.
func (s *Service) GetUserRating(ctx context.Context, sessionID, resourceID string) int {
	if sessionID == "" || resourceID == "" {
		return 0
	}
	rating, err := s.repo.FindBySession(ctx, resourceID, sessionID)
	if err != nil {
		zap.L().Error("failed to get user rating", zap.String("resource_id", resourceID), zap.Error(err))
		return 0
	}
	if rating == nil {
		return 0
	}
	return rating.Rating
}
