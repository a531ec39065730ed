// Package client talks to the knowledgebuddy HTTP API on behalf of one session.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/pkg/clients"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
	"github.com/GlebRadaev/knowledgebuddy/pkg/utils"
)

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL   string
	sessionID string
	http      clients.HTTPClientI
}

func New(baseURL, sessionID string, httpClient clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		sessionID: sessionID,
		http:      httpClient,
	}
}

func (c *Client) SessionID() string {
	return c.sessionID
}

func (c *Client) ListResources(ctx context.Context, category, query string) ([]dto.ResourceResponseDTO, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if query != "" {
		params.Set("q", query)
	}
	path := "/api/resources"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resources []dto.ResourceResponseDTO
	if err := c.get(ctx, path, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *Client) GetResource(ctx context.Context, id string) (*dto.ResourceResponseDTO, error) {
	var resource dto.ResourceResponseDTO
	if err := c.get(ctx, "/api/resources/"+url.PathEscape(id), &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

func (c *Client) Categories(ctx context.Context) ([]dto.CategoryResponseDTO, error) {
	var categories []dto.CategoryResponseDTO
	if err := c.get(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetUserRating returns the session's rating of the resource, 0 when there is none or the
// request fails.
func (c *Client) GetUserRating(ctx context.Context, resourceID string) int {
	var resp dto.UserRatingResponseDTO
	if err := c.get(ctx, "/api/resources/"+url.PathEscape(resourceID)+"/rating", &resp); err != nil {
		zap.L().Warn("can't get user rating", zap.String("resource_id", resourceID), zap.Error(err))
		return 0
	}
	return resp.Rating
}

func (c *Client) SubmitRating(ctx context.Context, resourceID string, rating int) bool {
	var resp dto.SuccessResponseDTO
	err := c.post(ctx, "/api/resources/"+url.PathEscape(resourceID)+"/rating", dto.SubmitRatingRequestDTO{Rating: rating}, &resp)
	if err != nil {
		zap.L().Warn("can't submit rating", zap.String("resource_id", resourceID), zap.Error(err))
		return false
	}
	return resp.Success
}

func (c *Client) RecordDownload(ctx context.Context, resourceID string) bool {
	var resp dto.SuccessResponseDTO
	if err := c.post(ctx, "/api/resources/"+url.PathEscape(resourceID)+"/downloads", nil, &resp); err != nil {
		zap.L().Warn("can't record download", zap.String("resource_id", resourceID), zap.Error(err))
		return false
	}
	return resp.Success
}

func (c *Client) CreateOrder(ctx context.Context, req dto.CreateOrderRequestDTO) (*dto.CreateOrderResponseDTO, error) {
	var resp dto.CreateOrderResponseDTO
	if err := c.post(ctx, "/api/payments/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequestDTO) (*dto.VerifyPaymentResponseDTO, error) {
	var resp dto.VerifyPaymentResponseDTO
	if err := c.post(ctx, "/api/payments/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	status, body, _, err := c.http.Get(ctx, c.baseURL+path, c.headers())
	if err != nil {
		return err
	}
	return decode(status, body, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return err
		}
	}
	headers := c.headers()
	headers.Set("Content-Type", "application/json")

	status, body, _, err := c.http.Post(ctx, c.baseURL+path, headers, payload)
	if err != nil {
		return err
	}
	return decode(status, body, out)
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	if c.sessionID != "" {
		h.Set(session.HeaderName, c.sessionID)
	}
	return h
}

func decode(status int, body []byte, out any) error {
	if status >= 200 && status < 300 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var resp utils.Response
	_ = json.Unmarshal(body, &resp)
	apiErr := &APIError{StatusCode: status, Message: resp.Error, Details: resp.Details}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	}
	return apiErr
}
