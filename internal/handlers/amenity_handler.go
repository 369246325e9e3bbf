package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-finder/internal/domain/amenity"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/httpresp"
	"github.com/BruksfildServices01/barber-finder/internal/middleware"
	"github.com/BruksfildServices01/barber-finder/internal/models"
	ucamenity "github.com/BruksfildServices01/barber-finder/internal/usecase/amenity"
)

type AmenityHandler struct {
	repo domain.Repository

	createUC        *ucamenity.Create
	updateUC        *ucamenity.Update
	deleteUC        *ucamenity.Delete
	popularUC       *ucamenity.GetPopular
	byBarbershopsUC *ucamenity.ByBarbershops
}

func NewAmenityHandler(
	repo domain.Repository,
	createUC *ucamenity.Create,
	updateUC *ucamenity.Update,
	deleteUC *ucamenity.Delete,
	popularUC *ucamenity.GetPopular,
	byBarbershopsUC *ucamenity.ByBarbershops,
) *AmenityHandler {
	return &AmenityHandler{
		repo:            repo,
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		popularUC:       popularUC,
		byBarbershopsUC: byBarbershopsUC,
	}
}

// --------- Requests ---------

type CreateAmenityRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Icon string `json:"icon" binding:"required,max=100"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
	Icon *string `json:"icon" binding:"omitempty,min=1,max=100"`
}

type AmenitiesByBarbershopsRequest struct {
	BarbershopIDs []string `json:"barbershop_ids" binding:"required,min=1,dive,uuid"`
}

// --------- Handlers ---------

func (h *AmenityHandler) List(c *gin.Context) {
	query := c.Query("search")

	var (
		amenities []models.Amenity
		err       error
	)
	if query != "" {
		amenities, err = h.repo.Search(c.Request.Context(), query)
	} else {
		amenities, err = h.repo.List(c.Request.Context())
	}
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.List(c, amenities)
}

func (h *AmenityHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	a, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	if a == nil {
		httperr.NotFound(c, "amenity_not_found", "Amenity not found.")
		return
	}
	httpresp.OK(c, a)
}

func (h *AmenityHandler) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	amenities, err := h.popularUC.Execute(c.Request.Context(), limit)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.List(c, amenities)
}

func (h *AmenityHandler) ByBarbershops(c *gin.Context) {
	var req AmenitiesByBarbershopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	mapped, err := h.byBarbershopsUC.Execute(c.Request.Context(), req.BarbershopIDs)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, mapped)
}

func (h *AmenityHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	var req CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	a, err := h.createUC.Execute(c.Request.Context(), caller, req.Name, req.Icon)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.Created(c, a)
}

func (h *AmenityHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	a, err := h.updateUC.Execute(c.Request.Context(), caller, id, ucamenity.UpdateInput{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, a)
}

func (h *AmenityHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "amenity_deleted"})
}
