package ratings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
	"github.com/GlebRadaev/knowledgebuddy/pkg/utils"
	"github.com/GlebRadaev/knowledgebuddy/pkg/validate"
)

//go:generate mockgen -source=ratings.go -destination=mock_ratings.go -package=ratings

type Service interface {
	SubmitRating(ctx context.Context, sessionID, resourceID string, rating int) bool
	GetUserRating(ctx context.Context, sessionID, resourceID string) int
}

type RatingHandler struct {
	ratingService Service
}

func New(ratingService Service) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// GetUserRating godoc
//
//	@Summary		Get own rating
//	@Description	Get the rating the caller's session gave to the resource, 0 when there is none.
//	@Tags			Ratings
//	@Produce		json
//	@Param			id				path		string	true	"Resource id"
//	@Param			X-Session-Id	header		string	false	"Session token"
//	@Success		200				{object}	dto.UserRatingResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid resource id"
//	@Router			/api/resources/{id}/rating [get]
func (h *RatingHandler) GetUserRating(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validate.IsResourceID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	rating := h.ratingService.GetUserRating(r.Context(), session.FromContext(r.Context()), id)
	utils.RespondWithJSON(w, http.StatusOK, dto.UserRatingResponseDTO{Rating: rating})
}

// SubmitRating godoc
//
//	@Summary		Rate resource
//	@Description	Store the caller's 1-5 rating for the resource. A repeated submission replaces the earlier one.
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			id				path		string						true	"Resource id"
//	@Param			X-Session-Id	header		string						false	"Session token"
//	@Param			request			body		dto.SubmitRatingRequestDTO	true	"Rating"
//	@Success		200				{object}	dto.SuccessResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid request"
//	@Failure		500				{object}	dto.SuccessResponseDTO
//	@Router			/api/resources/{id}/rating [post]
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validate.IsResourceID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	var req dto.SubmitRatingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDetails(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if !h.ratingService.SubmitRating(r.Context(), session.FromContext(r.Context()), id, req.Rating) {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.SuccessResponseDTO{Success: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
