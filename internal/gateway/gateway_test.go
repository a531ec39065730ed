package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{GatewayAddress: "http://gateway", KeyID: "rzp_test_key", KeySecret: "secret"}
	return New(cfg, client), client
}

func TestClient_CreateOrder(t *testing.T) {
	var received OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_1","amount":9900,"currency":"INR","receipt":"rcpt_1","status":"created"}`))
	}))
	defer srv.Close()

	cfg := &config.Config{GatewayAddress: srv.URL, KeyID: "rzp_test_key", KeySecret: "secret"}
	client := New(cfg, clients.NewHTTPClient(time.Second))

	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Amount:   9900,
		Currency: "INR",
		Receipt:  "rcpt_1",
		Notes:    map[string]string{"project_id": "abc-123", "project_title": "Notes"},
	})
	require.NoError(t, err)
	assert.Equal(t, &Order{ID: "order_1", Amount: 9900, Currency: "INR", Receipt: "rcpt_1", Status: "created"}, order)
	assert.Equal(t, int64(9900), received.Amount)
	assert.Equal(t, "abc-123", received.Notes["project_id"])
}

func TestClient_CreateOrderErrors(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *clients.MockHTTPClientI)
		expectedErr error
	}{
		{
			name: "Transport error",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Post(gomock.Any(), "http://gateway/v1/orders", gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused"))
			},
		},
		{
			name: "Gateway rejects credentials",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusUnauthorized, []byte(`{"error":{"description":"Authentication failed"}}`), http.Header{}, nil)
			},
			expectedErr: ErrUnexpectedStatus,
		},
		{
			name: "Malformed body",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), http.Header{}, nil)
			},
			expectedErr: ErrMalformedBody,
		},
		{
			name: "Order without id",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"amount":100}`), http.Header{}, nil)
			},
			expectedErr: ErrMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := NewMock(t)
			tt.prepareMock(mock)

			order, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
			assert.Error(t, err)
			assert.Nil(t, order)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
			assert.NotContains(t, err.Error(), "secret")
		})
	}
}

func TestClient_FetchPayment(t *testing.T) {
	tests := []struct {
		name        string
		paymentID   string
		prepareMock func(m *clients.MockHTTPClientI)
		expected    *domain.Payment
		expectedErr error
	}{
		{
			name:      "Payment found",
			paymentID: "pay_1",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), "http://gateway/v1/payments/pay_1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header) (int, []byte, http.Header, error) {
						expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("rzp_test_key:secret"))
						assert.Equal(t, expected, headers.Get("Authorization"))
						return http.StatusOK, []byte(`{"id":"pay_1","amount":9900,"status":"captured","method":"upi","order_id":"order_1","email":"a@b.c"}`), http.Header{}, nil
					})
			},
			expected: &domain.Payment{ID: "pay_1", Amount: 9900, Status: "captured", Method: "upi", OrderID: "order_1"},
		},
		{
			name:      "Payment id is escaped",
			paymentID: "pay/../orders",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), "http://gateway/v1/payments/pay%2F..%2Forders", gomock.Any()).
					Return(http.StatusNotFound, []byte(`{}`), http.Header{}, nil)
			},
			expectedErr: ErrUnexpectedStatus,
		},
		{
			name:      "Gateway unavailable",
			paymentID: "pay_1",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, []byte(`upstream`), http.Header{}, nil)
			},
			expectedErr: ErrUnexpectedStatus,
		},
		{
			name:      "Transport error",
			paymentID: "pay_1",
			prepareMock: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, nil, context.DeadlineExceeded)
			},
			expectedErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := NewMock(t)
			tt.prepareMock(mock)

			payment, err := client.FetchPayment(context.Background(), tt.paymentID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, payment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, payment)
		})
	}
}
