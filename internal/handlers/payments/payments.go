package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/paymentservice"
	"github.com/GlebRadaev/knowledgebuddy/pkg/utils"
	"github.com/GlebRadaev/knowledgebuddy/pkg/validate"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	CreateOrder(ctx context.Context, req domain.ContributionRequest) (*domain.PaymentOrder, error)
	VerifyPayment(ctx context.Context, v domain.PaymentVerification) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create payment order
//	@Description	Create a gateway order for a contribution towards a resource. Amount is in rupees.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Contribution"
//	@Success		200		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Resource not found"
//	@Failure		500		{object}	utils.Response	"Failed to create payment order"
//	@Failure		502		{object}	utils.Response	"Failed to create payment order"
//	@Router			/api/payments/orders [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDetails(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), domain.ContributionRequest{
		Amount:        req.Amount,
		ResourceID:    req.ProjectID,
		ResourceTitle: req.ProjectTitle,
	})
	if err != nil {
		var verr *paymentservice.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.RespondWithDetails(w, http.StatusBadRequest, "Invalid request", verr.Field+" "+verr.Details)
		case errors.Is(err, paymentservice.ErrResourceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Resource not found")
		case errors.Is(err, paymentservice.ErrUpstream):
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to create payment order")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment order")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      order.PublicKey,
	})
}

// VerifyPayment godoc
//
//	@Summary		Verify payment
//	@Description	Check the checkout completion signature and return the gateway's payment record.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Checkout completion"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment signature"
//	@Failure		500		{object}	utils.Response	"Payment verification failed"
//	@Failure		502		{object}	utils.Response	"Payment verification failed"
//	@Router			/api/payments/verify [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDetails(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	payment, err := h.paymentService.VerifyPayment(r.Context(), domain.PaymentVerification{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		var verr *paymentservice.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.RespondWithDetails(w, http.StatusBadRequest, "Invalid request", verr.Field+" "+verr.Details)
		case errors.Is(err, paymentservice.ErrSignatureMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment signature")
		case errors.Is(err, paymentservice.ErrUpstream):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment verification failed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Payment verification failed")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyPaymentResponseDTO{
		Success: true,
		Payment: dto.PaymentDTO{
			ID:      payment.ID,
			Amount:  payment.Amount,
			Status:  payment.Status,
			Method:  payment.Method,
			OrderID: payment.OrderID,
		},
	})
}
