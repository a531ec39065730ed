package repo

import (
	"github.com/GlebRadaev/knowledgebuddy/internal/pg"
	downloadrepo "github.com/GlebRadaev/knowledgebuddy/internal/repo/download-repo"
	ratingrepo "github.com/GlebRadaev/knowledgebuddy/internal/repo/rating-repo"
	resourcerepo "github.com/GlebRadaev/knowledgebuddy/internal/repo/resource-repo"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/catalogservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/downloadservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/paymentservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/ratingservice"
)

type ResourceRepo interface {
	catalogservice.ResourceRepo
	downloadservice.ResourceRepo
	paymentservice.ResourceRepo
}

type RatingRepo interface {
	catalogservice.RatingRepo
	ratingservice.Repo
}

type DownloadRepo interface {
	catalogservice.DownloadRepo
	downloadservice.Repo
}

type Repositories struct {
	ResourceRepo ResourceRepo
	RatingRepo   RatingRepo
	DownloadRepo DownloadRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ResourceRepo: resourcerepo.New(conn),
		RatingRepo:   ratingrepo.New(conn, txManager),
		DownloadRepo: downloadrepo.New(conn),
	}
}
