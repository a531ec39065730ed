package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/knowledgebuddy/docs"
	paymenthandlers "github.com/GlebRadaev/knowledgebuddy/internal/handlers/payments"
	ratinghandlers "github.com/GlebRadaev/knowledgebuddy/internal/handlers/ratings"
	resourcehandlers "github.com/GlebRadaev/knowledgebuddy/internal/handlers/resources"
	"github.com/GlebRadaev/knowledgebuddy/internal/service"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ResourceHandler interface {
	ListResources(w http.ResponseWriter, r *http.Request)
	GetResource(w http.ResponseWriter, r *http.Request)
	GetCategories(w http.ResponseWriter, r *http.Request)
	RecordDownload(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type RatingHandler interface {
	GetUserRating(w http.ResponseWriter, r *http.Request)
	SubmitRating(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ResourceHandler ResourceHandler
	RatingHandler   RatingHandler
	PaymentHandler  PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ResourceHandler: resourcehandlers.New(s.CatalogService, s.DownloadService),
		RatingHandler:   ratinghandlers.New(s.RatingService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	h.use(r)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/categories", h.ResourceHandler.GetCategories)
	r.Route("/api/resources", func(r chi.Router) {
		r.Get("/", h.ResourceHandler.ListResources)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(session.Middleware)
			r.Get("/", h.ResourceHandler.GetResource)
			r.Get("/rating", h.RatingHandler.GetUserRating)
			r.Post("/rating", h.RatingHandler.SubmitRating)
			r.Post("/downloads", h.ResourceHandler.RecordDownload)
			r.Get("/download", h.ResourceHandler.Download)
		})
	})
	h.paymentRoutes(r)

	return r
}

// InitPaymentRoutes mounts only the payment endpoints, for deployments that serve them apart
// from the catalog.
func (h *Handlers) InitPaymentRoutes(r chi.Router) chi.Router {
	h.use(r)
	h.paymentRoutes(r)
	return r
}

func (h *Handlers) use(r chi.Router) {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type", session.HeaderName},
			ExposedHeaders: []string{session.HeaderName},
			MaxAge:         300,
		}),
	)
}

func (h *Handlers) paymentRoutes(r chi.Router) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/orders", h.PaymentHandler.CreateOrder)
		r.Post("/verify", h.PaymentHandler.VerifyPayment)
	})
}
