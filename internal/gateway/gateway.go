package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/pkg/clients"
	"go.uber.org/zap"
)

const (
	ordersPath   = "/v1/orders"
	paymentsPath = "/v1/payments/"

	// upstream error bodies are logged, truncated to this size
	logBodyLimit = 512
)

var (
	ErrUnexpectedStatus = errors.New("unexpected gateway status")
	ErrMalformedBody    = errors.New("malformed gateway response")
)

type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Client struct {
	url       string
	keyID     string
	keySecret string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:       cfg.GatewayAddress,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		client:    client,
	}
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode order request: %w", err)
	}
	headers := c.headers()
	headers.Set("Content-Type", "application/json")

	statusCode, respBody, _, err := c.client.Post(ctx, c.url+ordersPath, headers, body)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := checkStatus("create order", statusCode, respBody); err != nil {
		return nil, err
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil || order.ID == "" {
		return nil, fmt.Errorf("create order: %w", ErrMalformedBody)
	}
	return &order, nil
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	statusCode, respBody, _, err := c.client.Get(ctx, c.url+paymentsPath+url.PathEscape(paymentID), c.headers())
	if err != nil {
		return nil, fmt.Errorf("fetch payment: %w", err)
	}
	if err := checkStatus("fetch payment", statusCode, respBody); err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := json.Unmarshal(respBody, &payment); err != nil || payment.ID == "" {
		return nil, fmt.Errorf("fetch payment: %w", ErrMalformedBody)
	}
	return &payment, nil
}

func (c *Client) headers() http.Header {
	credentials := base64.StdEncoding.EncodeToString([]byte(c.keyID + ":" + c.keySecret))
	return http.Header{
		"Authorization": []string{"Basic " + credentials},
		"Accept":        []string{"application/json"},
	}
}

func checkStatus(op string, statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	if len(body) > logBodyLimit {
		body = body[:logBodyLimit]
	}
	zap.L().Error("gateway returned an error",
		zap.String("op", op),
		zap.Int("status", statusCode),
		zap.ByteString("body", body),
	)
	return fmt.Errorf("%s: %w: %d", op, ErrUnexpectedStatus, statusCode)
}
