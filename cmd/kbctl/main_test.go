package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/knowledgebuddy/internal/checkout"
	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(dir), cfg)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://kb.example\ntimeout: 3s\n"), 0o600))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://kb.example", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, filepath.Join(dir, "session.yaml"), cfg.SessionFile)

	require.NoError(t, os.WriteFile(path, []byte("api_url: [\n"), 0o600))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestTerminalWidget(t *testing.T) {
	opts := checkout.WidgetOptions{Name: "Knowledge Buddy", OrderID: "order_1", Amount: 9900, Currency: "INR"}

	tests := []struct {
		name    string
		input   string
		want    *checkout.Completion
		wantErr bool
	}{
		{name: "completed", input: "pay_1 abc\n", want: &checkout.Completion{OrderID: "order_1", PaymentID: "pay_1", Signature: "abc"}},
		{name: "dismissed", input: "\n"},
		{name: "closed input", input: ""},
		{name: "malformed", input: "pay_1\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := newTerminalWidget(strings.NewReader(tt.input), &out).Open(context.Background(), opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "99.00 INR")
		})
	}
}

func newAPI(t *testing.T) *httptest.Server {
	write := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	res := dto.ResourceResponseDTO{ID: "abc-123", Title: "DBMS Notes", DriveFileID: "f1", SuggestedPrice: 99}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/resources", func(w http.ResponseWriter, r *http.Request) {
		write(w, []dto.ResourceResponseDTO{res})
	})
	mux.HandleFunc("/api/resources/abc-123", func(w http.ResponseWriter, r *http.Request) {
		write(w, res)
	})
	mux.HandleFunc("/api/resources/abc-123/downloads", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, session.Valid(r.Header.Get(session.HeaderName)))
		write(w, dto.SuccessResponseDTO{Success: true})
	})
	mux.HandleFunc("/api/payments/orders", func(w http.ResponseWriter, r *http.Request) {
		write(w, dto.CreateOrderResponseDTO{OrderID: "order_1", Amount: 9900, Currency: "INR", Key: "rzp_test_key"})
	})
	mux.HandleFunc("/api/payments/verify", func(w http.ResponseWriter, r *http.Request) {
		var req dto.VerifyPaymentRequestDTO
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "order_1", req.OrderID)
		write(w, dto.VerifyPaymentResponseDTO{Success: true, Payment: dto.PaymentDTO{ID: req.PaymentID}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, srv *httptest.Server, stdin string, args ...string) (string, error) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath, "--api", srv.URL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	srv := newAPI(t)

	out, err := run(t, srv, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DBMS Notes")

	out, err = run(t, srv, "", "download", "abc-123")
	require.NoError(t, err)
	assert.Contains(t, out, "https://drive.google.com/uc?export=download&id=f1")

	out, err = run(t, srv, "pay_1 sig\n", "contribute", "abc-123")
	require.NoError(t, err)
	assert.Contains(t, out, "Payment Successful!")
	assert.Contains(t, out, "kbctl rate abc-123")

	out, err = run(t, srv, "\n", "contribute", "abc-123", "--amount", "199")
	require.NoError(t, err)
	assert.Contains(t, out, "Payment Cancelled")

	out, err = run(t, srv, "", "session")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "user_"))

	_, err = run(t, srv, "", "rate", "abc-123", "9")
	assert.Error(t, err)
}
