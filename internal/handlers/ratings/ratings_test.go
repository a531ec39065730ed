package ratings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
	"github.com/GlebRadaev/knowledgebuddy/pkg/utils"
)

func NewMock(t *testing.T) (*RatingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(session.WithID(ctx, "user_1"))
}

func TestGetUserRating(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		expected     int
	}{
		{
			name: "Existing rating",
			id:   "abc-123",
			prepareMock: func() {
				service.EXPECT().GetUserRating(gomock.Any(), "user_1", "abc-123").Return(4)
			},
			expectedCode: http.StatusOK,
			expected:     4,
		},
		{
			name: "No rating",
			id:   "abc-123",
			prepareMock: func() {
				service.EXPECT().GetUserRating(gomock.Any(), "user_1", "abc-123").Return(0)
			},
			expectedCode: http.StatusOK,
			expected:     0,
		},
		{
			name:         "Invalid id",
			id:           "-abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withID(httptest.NewRequest(http.MethodGet, "/api/resources/x/rating", nil), tt.id)
			rec := httptest.NewRecorder()
			handler.GetUserRating(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.UserRatingResponseDTO
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expected, resp.Rating)
			}
		})
	}
}

func TestSubmitRating(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedSuccess bool
		expectedDetails string
	}{
		{
			name: "Rating stored",
			body: `{"rating":5}`,
			prepareMock: func() {
				service.EXPECT().SubmitRating(gomock.Any(), "user_1", "abc-123", 5).Return(true)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
		},
		{
			name: "Storage failure",
			body: `{"rating":3}`,
			prepareMock: func() {
				service.EXPECT().SubmitRating(gomock.Any(), "user_1", "abc-123", 3).Return(false)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedSuccess: false,
		},
		{
			name:            "Rating above range",
			body:            `{"rating":6}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedDetails: "rating must be at most 5",
		},
		{
			name:            "Rating missing",
			body:            `{}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedDetails: "rating is required",
		},
		{
			name:         "Malformed body",
			body:         `{"rating":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withID(httptest.NewRequest(http.MethodPost, "/api/resources/abc-123/rating", bytes.NewBufferString(tt.body)), "abc-123")
			rec := httptest.NewRecorder()
			handler.SubmitRating(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusBadRequest {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Error)
				assert.Equal(t, tt.expectedDetails, resp.Details)
				return
			}
			var resp dto.SuccessResponseDTO
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.expectedSuccess, resp.Success)
		})
	}
}
