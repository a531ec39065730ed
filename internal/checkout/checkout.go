// Package checkout drives one contribution from order creation to the download hand-off.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
)

//go:generate mockgen -source=checkout.go -destination=mock_checkout.go -package=checkout

type State string

const (
	StateIdle                  State = "IDLE"
	StateOrderRequested        State = "ORDER_REQUESTED"
	StateOrderCreated          State = "ORDER_CREATED"
	StateWidgetOpen            State = "WIDGET_OPEN"
	StateVerificationRequested State = "VERIFICATION_REQUESTED"
	StateVerified              State = "VERIFIED"
	StateDownloadTriggered     State = "DOWNLOAD_TRIGGERED"
	StateRatingPrompted        State = "RATING_PROMPTED"
	StateCancelled             State = "CANCELLED"
	StateVerificationFailed    State = "VERIFICATION_FAILED"
	StateFailed                State = "FAILED"
)

const (
	MinAmount = 1
	MaxAmount = 100000

	widgetName  = "Knowledge Buddy"
	widgetTheme = "#3B82F6"
)

var (
	ErrCancelled          = errors.New("payment cancelled")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrInvalidAmount      = fmt.Errorf("amount must be between %d and %d", MinAmount, MaxAmount)
	ErrNoFile             = errors.New("resource has no file attached")
	ErrWidgetUnavailable  = errors.New("payment widget unavailable")
)

type Preset struct {
	Amount int
	Label  string
}

var Presets = []Preset{
	{Amount: 99, Label: "Buy me a coffee"},
	{Amount: 199, Label: "Really helpful!"},
	{Amount: 299, Label: "Amazing work!"},
	{Amount: 499, Label: "You're awesome!"},
}

type API interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequestDTO) (*dto.CreateOrderResponseDTO, error)
	VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequestDTO) (*dto.VerifyPaymentResponseDTO, error)
	RecordDownload(ctx context.Context, resourceID string) bool
}

type WidgetOptions struct {
	Key         string
	OrderID     string
	Amount      int64
	Currency    string
	Name        string
	Description string
	ThemeColor  string
}

// Completion is what the widget reports after the payer finishes at the gateway.
type Completion struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Widget collects the payment. Open returns a nil completion when the payer dismisses it.
type Widget interface {
	Open(ctx context.Context, opts WidgetOptions) (*Completion, error)
}

type LoadFunc func(ctx context.Context) (Widget, error)

// WidgetLoader hands out one widget, loading it on first use. A failed load is retried on the
// next call.
type WidgetLoader struct {
	mu     sync.Mutex
	load   LoadFunc
	widget Widget
}

func NewWidgetLoader(load LoadFunc) *WidgetLoader {
	return &WidgetLoader{load: load}
}

func (l *WidgetLoader) Ensure(ctx context.Context) (Widget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.widget != nil {
		return l.widget, nil
	}
	w, err := l.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWidgetUnavailable, err)
	}
	if w == nil {
		return nil, ErrWidgetUnavailable
	}
	l.widget = w
	return w, nil
}

type Result struct {
	State        State
	Payment      *dto.PaymentDTO
	DownloadURL  string
	Recorded     bool
	PromptRating bool
}

type Orchestrator struct {
	api         API
	loader      *WidgetLoader
	urlTemplate string

	mu       sync.Mutex
	state    State
	observer func(State)
}

type Option func(*Orchestrator)

// WithObserver reports every state transition.
func WithObserver(fn func(State)) Option {
	return func(o *Orchestrator) {
		o.observer = fn
	}
}

func New(api API, loader *WidgetLoader, urlTemplate string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		api:         api,
		loader:      loader,
		urlTemplate: urlTemplate,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	observer := o.observer
	o.mu.Unlock()

	zap.L().Debug("checkout state", zap.String("state", string(s)))
	if observer != nil {
		observer(s)
	}
}

// Contribute takes a payment for the resource and, once the server confirms it, records the
// download and returns the file location.
func (o *Orchestrator) Contribute(ctx context.Context, resource dto.ResourceResponseDTO, amount int) (*Result, error) {
	if amount < MinAmount || amount > MaxAmount {
		return nil, ErrInvalidAmount
	}

	o.setState(StateOrderRequested)
	widget, err := o.loader.Ensure(ctx)
	if err != nil {
		o.setState(StateFailed)
		return nil, err
	}

	order, err := o.api.CreateOrder(ctx, dto.CreateOrderRequestDTO{
		Amount:       amount,
		ProjectID:    resource.ID,
		ProjectTitle: resource.Title,
	})
	if err != nil {
		o.setState(StateFailed)
		return nil, fmt.Errorf("create order: %w", err)
	}
	o.setState(StateOrderCreated)

	o.setState(StateWidgetOpen)
	completion, err := widget.Open(ctx, WidgetOptions{
		Key:         order.Key,
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        widgetName,
		Description: "Contribution for " + resource.Title,
		ThemeColor:  widgetTheme,
	})
	if err != nil {
		o.setState(StateFailed)
		return nil, fmt.Errorf("payment widget: %w", err)
	}
	if completion == nil {
		o.setState(StateCancelled)
		return &Result{State: StateCancelled}, ErrCancelled
	}

	orderID := completion.OrderID
	if orderID == "" {
		orderID = order.OrderID
	}
	o.setState(StateVerificationRequested)
	verified, err := o.api.VerifyPayment(ctx, dto.VerifyPaymentRequestDTO{
		OrderID:   orderID,
		PaymentID: completion.PaymentID,
		Signature: completion.Signature,
	})
	if err != nil {
		o.setState(StateVerificationFailed)
		return &Result{State: StateVerificationFailed}, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	if !verified.Success {
		o.setState(StateVerificationFailed)
		return &Result{State: StateVerificationFailed}, ErrVerificationFailed
	}
	o.setState(StateVerified)

	result, err := o.download(ctx, resource)
	if err != nil {
		return nil, err
	}
	result.Payment = &verified.Payment

	o.setState(StateRatingPrompted)
	result.State = StateRatingPrompted
	result.PromptRating = true
	return result, nil
}

// FreeDownload records the download and returns the file location without a payment.
func (o *Orchestrator) FreeDownload(ctx context.Context, resource dto.ResourceResponseDTO) (*Result, error) {
	result, err := o.download(ctx, resource)
	if err != nil {
		return nil, err
	}
	result.State = StateDownloadTriggered
	return result, nil
}

// download records before handing out the URL so a download is never missed.
func (o *Orchestrator) download(ctx context.Context, resource dto.ResourceResponseDTO) (*Result, error) {
	if resource.DriveFileID == "" {
		o.setState(StateFailed)
		return nil, ErrNoFile
	}

	recorded := o.api.RecordDownload(ctx, resource.ID)
	if !recorded {
		zap.L().Warn("download not recorded", zap.String("resource_id", resource.ID))
	}
	o.setState(StateDownloadTriggered)

	return &Result{
		DownloadURL: DownloadURL(o.urlTemplate, resource.DriveFileID),
		Recorded:    recorded,
	}, nil
}

func DownloadURL(template, fileID string) string {
	if !strings.Contains(template, "%s") {
		return ""
	}
	return fmt.Sprintf(template, fileID)
}
