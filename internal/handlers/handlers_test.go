package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/knowledgebuddy/internal/handlers/payments"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers/ratings"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers/resources"
	"github.com/GlebRadaev/knowledgebuddy/internal/service"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		CatalogService:  resources.NewMockCatalogService(ctrl),
		DownloadService: resources.NewMockDownloadService(ctrl),
		RatingService:   ratings.NewMockService(ctrl),
		PaymentService:  payments.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func newMockHandlers(ctrl *gomock.Controller) *Handlers {
	resourceHandler := NewMockResourceHandler(ctrl)
	ratingHandler := NewMockRatingHandler(ctrl)
	paymentHandler := NewMockPaymentHandler(ctrl)

	resourceHandler.EXPECT().ListResources(gomock.Any(), gomock.Any()).AnyTimes()
	resourceHandler.EXPECT().GetResource(gomock.Any(), gomock.Any()).AnyTimes()
	resourceHandler.EXPECT().GetCategories(gomock.Any(), gomock.Any()).AnyTimes()
	resourceHandler.EXPECT().RecordDownload(gomock.Any(), gomock.Any()).AnyTimes()
	resourceHandler.EXPECT().Download(gomock.Any(), gomock.Any()).AnyTimes()
	ratingHandler.EXPECT().GetUserRating(gomock.Any(), gomock.Any()).AnyTimes()
	ratingHandler.EXPECT().SubmitRating(gomock.Any(), gomock.Any()).AnyTimes()
	paymentHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	paymentHandler.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		ResourceHandler: resourceHandler,
		RatingHandler:   ratingHandler,
		PaymentHandler:  paymentHandler,
	}
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newMockHandlers(ctrl).InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/resources", http.StatusOK},
		{"GET", "/api/categories", http.StatusOK},
		{"GET", "/api/resources/abc-123", http.StatusOK},
		{"GET", "/api/resources/abc-123/rating", http.StatusOK},
		{"POST", "/api/resources/abc-123/rating", http.StatusOK},
		{"POST", "/api/resources/abc-123/downloads", http.StatusOK},
		{"GET", "/api/resources/abc-123/download", http.StatusOK},
		{"POST", "/api/payments/orders", http.StatusOK},
		{"POST", "/api/payments/verify", http.StatusOK},
		{"GET", "/api/payments/orders", http.StatusMethodNotAllowed},
		{"GET", "/api/user/orders", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSessionIsIssuedOnResourceRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newMockHandlers(ctrl).InitRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resources/abc-123/rating", nil))
	issued := rec.Header().Get(session.HeaderName)
	assert.NotEmpty(t, issued)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), session.CookieName+"="+issued)

	req := httptest.NewRequest(http.MethodGet, "/api/resources/abc-123/rating", nil)
	req.Header.Set(session.HeaderName, "user_explicit")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "user_explicit", rec.Header().Get(session.HeaderName))
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestCORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newMockHandlers(ctrl).InitRoutes(router)

	req := httptest.NewRequest(http.MethodOptions, "/api/payments/orders", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInitPaymentRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newMockHandlers(ctrl).InitPaymentRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/payments/orders", http.StatusOK},
		{"POST", "/api/payments/verify", http.StatusOK},
		{"GET", "/api/resources", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
