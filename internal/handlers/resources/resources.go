package resources

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/catalogservice"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/downloadservice"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
	"github.com/GlebRadaev/knowledgebuddy/pkg/utils"
	"github.com/GlebRadaev/knowledgebuddy/pkg/validate"
)

//go:generate mockgen -source=resources.go -destination=mock_resources.go -package=resources

type CatalogService interface {
	ListResources(ctx context.Context, filter domain.ResourceFilter) ([]domain.ResourceWithStats, error)
	GetResource(ctx context.Context, id string) (*domain.ResourceWithStats, error)
	Categories() []domain.Category
}

type DownloadService interface {
	RecordDownload(ctx context.Context, sessionID, resourceID string) bool
	StartDownload(ctx context.Context, sessionID, resourceID string) (string, error)
}

type ResourceHandler struct {
	catalog   CatalogService
	downloads DownloadService
}

func New(catalog CatalogService, downloads DownloadService) *ResourceHandler {
	return &ResourceHandler{
		catalog:   catalog,
		downloads: downloads,
	}
}

// ListResources godoc
//
//	@Summary		List resources
//	@Description	List every resource with its rating and download aggregates, newest first.
//	@Tags			Resources
//	@Produce		json
//	@Param			category	query		string	false	"Category filter, 'all' for every category"
//	@Param			q			query		string	false	"Case-insensitive search over title and description"
//	@Success		200			{array}		dto.ResourceResponseDTO
//	@Failure		400			{object}	utils.Response	"Unknown category"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/resources [get]
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	category := domain.CategoryAll
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := domain.ParseCategory(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown category")
			return
		}
		category = parsed
	}

	resources, err := h.catalog.ListResources(r.Context(), domain.ResourceFilter{
		Category: category,
		Query:    r.URL.Query().Get("q"),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ResourceResponseDTO, 0, len(resources))
	for _, res := range resources {
		response = append(response, toDTO(res))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetResource godoc
//
//	@Summary		Get resource
//	@Description	Get one resource with its rating and download aggregates.
//	@Tags			Resources
//	@Produce		json
//	@Param			id	path		string	true	"Resource id"
//	@Success		200	{object}	dto.ResourceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid resource id"
//	@Failure		404	{object}	utils.Response	"Resource not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/resources/{id} [get]
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r)
	if !ok {
		return
	}

	resource, err := h.catalog.GetResource(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrResourceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Resource not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*resource))
}

// GetCategories godoc
//
//	@Summary		List categories
//	@Description	List resource categories with their display attributes.
//	@Tags			Resources
//	@Produce		json
//	@Success		200	{array}	dto.CategoryResponseDTO
//	@Router			/api/categories [get]
func (h *ResourceHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()
	response := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, c := range categories {
		response = append(response, dto.CategoryResponseDTO{
			ID:    string(c),
			Label: c.Label(),
			Icon:  c.Icon(),
			Color: c.Color(),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RecordDownload godoc
//
//	@Summary		Record download
//	@Description	Record that the caller's session downloaded the resource.
//	@Tags			Downloads
//	@Produce		json
//	@Param			id				path		string	true	"Resource id"
//	@Param			X-Session-Id	header		string	false	"Session token"
//	@Success		200				{object}	dto.SuccessResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid resource id"
//	@Failure		500				{object}	dto.SuccessResponseDTO
//	@Router			/api/resources/{id}/downloads [post]
func (h *ResourceHandler) RecordDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r)
	if !ok {
		return
	}

	if !h.downloads.RecordDownload(r.Context(), session.FromContext(r.Context()), id) {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.SuccessResponseDTO{Success: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}

// Download godoc
//
//	@Summary		Download resource
//	@Description	Record the download and redirect to the storage location of the file.
//	@Tags			Downloads
//	@Param			id				path	string	true	"Resource id"
//	@Param			X-Session-Id	header	string	false	"Session token"
//	@Success		302
//	@Failure		400	{object}	utils.Response	"Invalid resource id"
//	@Failure		404	{object}	utils.Response	"Resource not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/resources/{id}/download [get]
func (h *ResourceHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r)
	if !ok {
		return
	}

	url, err := h.downloads.StartDownload(r.Context(), session.FromContext(r.Context()), id)
	if err != nil {
		switch {
		case errors.Is(err, downloadservice.ErrResourceNotFound), errors.Is(err, downloadservice.ErrNoFile):
			utils.RespondWithError(w, http.StatusNotFound, "Resource not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func resourceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validate.IsResourceID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return "", false
	}
	return id, true
}

func toDTO(res domain.ResourceWithStats) dto.ResourceResponseDTO {
	tags := res.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ResourceResponseDTO{
		ID:             res.ID,
		Title:          res.Title,
		Description:    res.Description,
		Category:       string(res.Category),
		Tags:           tags,
		SuggestedPrice: res.SuggestedPrice,
		DriveFileID:    res.DriveFileID,
		ThumbnailURL:   res.ThumbnailURL,
		CreatedAt:      res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      res.UpdatedAt.Format(time.RFC3339),
		DownloadCount:  res.DownloadCount,
		TotalDownloads: res.TotalDownloads,
		Rating:         res.Rating,
		RatingCount:    res.RatingCount,
	}
}
