package downloadservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
)

//go:generate mockgen -source=downloadservice.go -destination=mock_downloadservice.go -package=downloadservice

type Repo interface {
	Save(ctx context.Context, download *domain.Download) error
}

type ResourceRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Resource, error)
}

type Service struct {
	repo        Repo
	resources   ResourceRepo
	urlTemplate string
}

func New(repo Repo, resources ResourceRepo, urlTemplate string) *Service {
	return &Service{
		repo:        repo,
		resources:   resources,
		urlTemplate: urlTemplate,
	}
}

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrNoFile           = errors.New("resource has no downloadable file")
)

// RecordDownload appends a download event for the session. Every call is recorded; unique
// counting happens on read.
func (s *Service) RecordDownload(ctx context.Context, sessionID, resourceID string) bool {
	if sessionID == "" || resourceID == "" {
		zap.L().Info("download without session or resource", zap.String("resource_id", resourceID))
		return false
	}
	err := s.repo.Save(ctx, &domain.Download{
		ResourceID:  resourceID,
		UserSession: sessionID,
	})
	if err != nil {
		zap.L().Error("failed to record download", zap.String("resource_id", resourceID), zap.Error(err))
		return false
	}
	return true
}

// StartDownload records the download and returns the storage URL of the resource file.
// A failed recording does not prevent the download.
func (s *Service) StartDownload(ctx context.Context, sessionID, resourceID string) (string, error) {
	resource, err := s.resources.FindByID(ctx, resourceID)
	if err != nil {
		zap.L().Error("failed to find resource for download", zap.String("resource_id", resourceID), zap.Error(err))
		return "", err
	}
	if resource == nil {
		return "", ErrResourceNotFound
	}
	url := resource.DownloadURL(s.urlTemplate)
	if url == "" {
		return "", ErrNoFile
	}

	if !s.RecordDownload(ctx, sessionID, resourceID) {
		zap.L().Warn("download continues without being recorded", zap.String("resource_id", resourceID))
	}
	return url, nil
}
