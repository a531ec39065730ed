package service

import (
	"github.com/bwmarrin/snowflake"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers/payments"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers/ratings"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers/resources"
	"github.com/GlebRadaev/knowledgebuddy/internal/repo"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/catalogservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/downloadservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/paymentservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/ratingservice"
)

type Services struct {
	CatalogService  resources.CatalogService
	DownloadService resources.DownloadService
	RatingService   ratings.Service
	PaymentService  payments.Service
}

// New wires the services. ledger may be nil to skip the local record of verified payments.
func New(repo *repo.Repositories, cfg *config.Config, gateway paymentservice.Gateway, ledger paymentservice.Ledger, node *snowflake.Node) *Services {
	return &Services{
		CatalogService:  catalogservice.New(repo.ResourceRepo, repo.RatingRepo, repo.DownloadRepo),
		DownloadService: downloadservice.New(repo.DownloadRepo, repo.ResourceRepo, cfg.DownloadURLTemplate),
		RatingService:   ratingservice.New(repo.RatingRepo),
		PaymentService:  paymentservice.New(cfg, gateway, repo.ResourceRepo, ledger, node),
	}
}
