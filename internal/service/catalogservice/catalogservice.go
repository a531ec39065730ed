package catalogservice

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

type ResourceRepo interface {
	List(ctx context.Context) ([]domain.Resource, error)
	FindByID(ctx context.Context, id string) (*domain.Resource, error)
}

type RatingRepo interface {
	ListValues(ctx context.Context) ([]domain.Rating, error)
}

type DownloadRepo interface {
	ListStats(ctx context.Context) ([]domain.DownloadStats, error)
}

type Service struct {
	resources ResourceRepo
	ratings   RatingRepo
	downloads DownloadRepo
}

func New(resources ResourceRepo, ratings RatingRepo, downloads DownloadRepo) *Service {
	return &Service{
		resources: resources,
		ratings:   ratings,
		downloads: downloads,
	}
}

var ErrResourceNotFound = errors.New("resource not found")

type aggregate struct {
	sum   int64
	count int64
}

// ListResources returns every resource matching filter together with its rating and download
// aggregates, newest first. The three reads run concurrently and any failure fails the call.
func (s *Service) ListResources(ctx context.Context, filter domain.ResourceFilter) ([]domain.ResourceWithStats, error) {
	var (
		resources []domain.Resource
		ratings   []domain.Rating
		stats     []domain.DownloadStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resources, err = s.resources.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		ratings, err = s.ratings.ListValues(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.downloads.ListStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load catalog", zap.Error(err))
		return nil, err
	}

	ratingsByID := groupRatings(ratings)
	statsByID := make(map[string]domain.DownloadStats, len(stats))
	for _, st := range stats {
		statsByID[st.ResourceID] = st
	}

	result := make([]domain.ResourceWithStats, 0, len(resources))
	for _, res := range resources {
		if !matches(res, filter) {
			continue
		}
		result = append(result, withStats(res, ratingsByID[res.ID], statsByID[res.ID]))
	}
	return result, nil
}

func (s *Service) GetResource(ctx context.Context, id string) (*domain.ResourceWithStats, error) {
	var (
		resource *domain.Resource
		ratings  []domain.Rating
		stats    []domain.DownloadStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resource, err = s.resources.FindByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		ratings, err = s.ratings.ListValues(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.downloads.ListStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load resource", zap.String("resource_id", id), zap.Error(err))
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}

	var st domain.DownloadStats
	for _, candidate := range stats {
		if candidate.ResourceID == id {
			st = candidate
			break
		}
	}
	result := withStats(*resource, groupRatings(ratings)[id], st)
	return &result, nil
}

func (s *Service) Categories() []domain.Category {
	categories := make([]domain.Category, len(domain.Categories))
	copy(categories, domain.Categories)
	return categories
}

func groupRatings(ratings []domain.Rating) map[string]aggregate {
	byID := make(map[string]aggregate)
	for _, r := range ratings {
		a := byID[r.ResourceID]
		a.sum += int64(r.Rating)
		a.count++
		byID[r.ResourceID] = a
	}
	return byID
}

func withStats(res domain.Resource, ratings aggregate, stats domain.DownloadStats) domain.ResourceWithStats {
	return domain.ResourceWithStats{
		Resource:       res,
		DownloadCount:  stats.UniqueDownloads,
		TotalDownloads: stats.TotalDownloads,
		Rating:         averageRating(ratings),
		RatingCount:    int(ratings.count),
	}
}

// averageRating is the mean rounded half away from zero to one decimal place; 0 without ratings.
func averageRating(a aggregate) float64 {
	if a.count == 0 {
		return 0
	}
	mean := decimal.NewFromInt(a.sum).Div(decimal.NewFromInt(a.count)).Round(1)
	return mean.InexactFloat64()
}

func matches(res domain.Resource, filter domain.ResourceFilter) bool {
	if !filter.Category.Matches(res.Category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(res.Title), q) ||
		strings.Contains(strings.ToLower(res.Description), q)
}
