package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/internal/gateway"
	"github.com/GlebRadaev/knowledgebuddy/pkg/signature"
	"github.com/GlebRadaev/knowledgebuddy/pkg/validate"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type Gateway interface {
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
}

type ResourceRepo interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Ledger interface {
	Record(p domain.Payment) (*domain.Receipt, bool, error)
}

const (
	Currency = "INR"

	MinAmount      = 1
	MaxAmount      = 100000
	MaxTitleLength = 200

	receiptPrefix      = "rcpt_"
	receiptIDPrefixLen = 12
	maxReceiptLength   = 40
)

var (
	ErrNotConfigured     = errors.New("payment gateway is not configured")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrUpstream          = errors.New("payment gateway request failed")
	ErrSignatureMismatch = errors.New("invalid payment signature")
)

// ValidationError is returned for malformed input before any external call is made.
type ValidationError struct {
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Details)
}

type Service struct {
	gateway   Gateway
	resources ResourceRepo
	ledger    Ledger
	verifier  signature.Verifier
	node      *snowflake.Node
	keyID     string
	keySecret string
}

// New builds the service. ledger may be nil, in which case verified payments are not recorded
// locally.
func New(cfg *config.Config, gw Gateway, resources ResourceRepo, ledger Ledger, node *snowflake.Node) *Service {
	return &Service{
		gateway:   gw,
		resources: resources,
		ledger:    ledger,
		verifier:  signature.NewHMACVerifier(cfg.KeySecret),
		node:      node,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}
}

func (s *Service) configured() bool {
	return s.keyID != "" && s.keySecret != ""
}

// CreateOrder registers a contribution with the gateway and returns what the checkout widget
// needs to open. Nothing is stored locally.
func (s *Service) CreateOrder(ctx context.Context, req domain.ContributionRequest) (*domain.PaymentOrder, error) {
	title := strings.TrimSpace(req.ResourceTitle)
	if err := validateContribution(req.Amount, req.ResourceID, title); err != nil {
		zap.L().Info("rejected contribution request", zap.Error(err))
		return nil, err
	}
	if !s.configured() {
		zap.L().Error("payment gateway credentials are missing")
		return nil, ErrNotConfigured
	}

	exists, err := s.resources.Exists(ctx, req.ResourceID)
	if err != nil {
		zap.L().Error("failed to check resource", zap.String("resource_id", req.ResourceID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrResourceNotFound
	}

	receipt := s.receipt(req.ResourceID)
	order, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   int64(req.Amount) * 100,
		Currency: Currency,
		Receipt:  receipt,
		Notes: map[string]string{
			"project_id":    req.ResourceID,
			"project_title": title,
		},
	})
	if err != nil {
		zap.L().Error("failed to create gateway order", zap.String("receipt", receipt), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	zap.L().Info("payment order created",
		zap.String("order_id", order.ID),
		zap.String("resource_id", req.ResourceID),
		zap.Int64("amount", order.Amount),
	)
	return &domain.PaymentOrder{
		OrderID:    order.ID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		Receipt:    receipt,
		PublicKey:  s.keyID,
		ResourceID: req.ResourceID,
		Title:      title,
	}, nil
}

// VerifyPayment checks the completion signature and, only when it matches, returns the
// gateway's view of the payment.
func (s *Service) VerifyPayment(ctx context.Context, v domain.PaymentVerification) (*domain.Payment, error) {
	switch {
	case v.OrderID == "":
		return nil, &ValidationError{Field: "razorpay_order_id", Details: "is required"}
	case v.PaymentID == "":
		return nil, &ValidationError{Field: "razorpay_payment_id", Details: "is required"}
	case v.Signature == "":
		return nil, &ValidationError{Field: "razorpay_signature", Details: "is required"}
	}
	if !s.configured() {
		zap.L().Error("payment gateway credentials are missing")
		return nil, ErrNotConfigured
	}

	if !s.verifier.Verify(v.OrderID, v.PaymentID, v.Signature) {
		zap.L().Warn("payment signature mismatch",
			zap.String("order_id", v.OrderID),
			zap.String("payment_id", v.PaymentID),
		)
		return nil, ErrSignatureMismatch
	}

	payment, err := s.gateway.FetchPayment(ctx, v.PaymentID)
	if err != nil {
		zap.L().Error("failed to fetch payment", zap.String("payment_id", v.PaymentID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	s.record(*payment)
	return payment, nil
}

func (s *Service) record(payment domain.Payment) {
	if s.ledger == nil {
		return
	}
	receipt, created, err := s.ledger.Record(payment)
	if err != nil {
		zap.L().Error("failed to record verified payment", zap.String("payment_id", payment.ID), zap.Error(err))
		return
	}
	if !created {
		zap.L().Info("payment verified again",
			zap.String("payment_id", payment.ID),
			zap.Int("attempts", receipt.Attempts),
		)
		return
	}
	zap.L().Info("payment verified",
		zap.String("payment_id", payment.ID),
		zap.String("order_id", payment.OrderID),
		zap.String("status", payment.Status),
	)
}

func (s *Service) receipt(resourceID string) string {
	prefix := resourceID
	if len(prefix) > receiptIDPrefixLen {
		prefix = prefix[:receiptIDPrefixLen]
	}
	receipt := receiptPrefix + prefix + "_" + s.node.Generate().String()
	if len(receipt) > maxReceiptLength {
		receipt = receipt[:maxReceiptLength]
	}
	return receipt
}

func validateContribution(amount int, resourceID, title string) error {
	if amount < MinAmount || amount > MaxAmount {
		return &ValidationError{Field: "amount", Details: fmt.Sprintf("must be between %d and %d", MinAmount, MaxAmount)}
	}
	if !validate.IsResourceID(resourceID) {
		return &ValidationError{Field: "projectId", Details: "must be a resource identifier"}
	}
	if title == "" {
		return &ValidationError{Field: "projectTitle", Details: "is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{Field: "projectTitle", Details: fmt.Sprintf("must be at most %d characters", MaxTitleLength)}
	}
	return nil
}
