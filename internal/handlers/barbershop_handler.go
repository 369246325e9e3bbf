package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-finder/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/httpresp"
	"github.com/BruksfildServices01/barber-finder/internal/middleware"
	"github.com/BruksfildServices01/barber-finder/internal/models"
	ucshop "github.com/BruksfildServices01/barber-finder/internal/usecase/barbershop"
)

type BarbershopHandler struct {
	repo domain.Repository

	createUC        *ucshop.Create
	updateUC        *ucshop.Update
	deleteUC        *ucshop.Delete
	addAmenitiesUC  *ucshop.AddAmenities
	removeAmenityUC *ucshop.RemoveAmenity
}

func NewBarbershopHandler(
	repo domain.Repository,
	createUC *ucshop.Create,
	updateUC *ucshop.Update,
	deleteUC *ucshop.Delete,
	addAmenitiesUC *ucshop.AddAmenities,
	removeAmenityUC *ucshop.RemoveAmenity,
) *BarbershopHandler {
	return &BarbershopHandler{
		repo:            repo,
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		addAmenitiesUC:  addAmenitiesUC,
		removeAmenityUC: removeAmenityUC,
	}
}

// --------- Requests ---------

type OpeningHourRequest struct {
	Day       string `json:"day" binding:"required,max=20"`
	OpenTime  string `json:"open_time" binding:"max=10"`
	CloseTime string `json:"close_time" binding:"max=10"`
	IsClosed  bool   `json:"is_closed"`
}

type CreateBarbershopRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Address       string `json:"address" binding:"required"`
	Phone         string `json:"phone" binding:"omitempty,max=20"`
	LogoURL       string `json:"logo_url" binding:"omitempty,url,max=500"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url,max=500"`
	About         string `json:"about"`

	AmenityIDs   []string             `json:"amenity_ids" binding:"omitempty,dive,uuid"`
	OpeningHours []OpeningHourRequest `json:"opening_hours" binding:"omitempty,dive"`
}

type UpdateBarbershopRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	Address       *string `json:"address" binding:"omitempty,min=1"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	LogoURL       *string `json:"logo_url" binding:"omitempty,url,max=500"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url,max=500"`
	About         *string `json:"about"`

	AmenityIDs   *[]string             `json:"amenity_ids" binding:"omitempty,dive,uuid"`
	OpeningHours *[]OpeningHourRequest `json:"opening_hours" binding:"omitempty,dive"`
}

type BarbershopAmenitiesRequest struct {
	AmenityIDs []string `json:"amenity_ids" binding:"required,min=1,dive,uuid"`
}

func toOpeningHourInputs(in []OpeningHourRequest) []ucshop.OpeningHourInput {
	hours := make([]ucshop.OpeningHourInput, 0, len(in))
	for _, h := range in {
		hours = append(hours, ucshop.OpeningHourInput{
			Day:       h.Day,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		})
	}
	return hours
}

// --------- Handlers ---------

func (h *BarbershopHandler) List(c *gin.Context) {
	query := c.Query("search")

	var err error
	shops, err := h.listShops(c, query)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.List(c, shops)
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
		return
	}
	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) GetAmenities(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
		return
	}
	httpresp.List(c, shop.Amenities)
}

func (h *BarbershopHandler) MyBarbershops(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	shops, err := h.repo.ListByOwner(c.Request.Context(), caller.ID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.List(c, shops)
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	shop, err := h.createUC.Execute(c.Request.Context(), caller, ucshop.CreateInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		LogoURL:       req.LogoURL,
		CoverImageURL: req.CoverImageURL,
		About:         req.About,
		AmenityIDs:    req.AmenityIDs,
		OpeningHours:  toOpeningHourInputs(req.OpeningHours),
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.Created(c, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucshop.UpdateInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		LogoURL:       req.LogoURL,
		CoverImageURL: req.CoverImageURL,
		About:         req.About,
		AmenityIDs:    req.AmenityIDs,
	}
	if req.OpeningHours != nil {
		hours := toOpeningHourInputs(*req.OpeningHours)
		in.OpeningHours = &hours
	}

	shop, err := h.updateUC.Execute(c.Request.Context(), caller, id, in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Delete(c *gin.Context) {
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
	httpresp.OK(c, gin.H{"message": "barbershop_deleted"})
}

func (h *BarbershopHandler) AddAmenities(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req BarbershopAmenitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	shop, err := h.addAmenitiesUC.Execute(c.Request.Context(), caller, id, req.AmenityIDs)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) RemoveAmenity(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	amenityID, ok := uuidParam(c, "amenityId")
	if !ok {
		return
	}

	shop, err := h.removeAmenityUC.Execute(c.Request.Context(), caller, id, amenityID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) listShops(c *gin.Context, query string) ([]models.Barbershop, error) {
	if query != "" {
		return h.repo.Search(c.Request.Context(), query)
	}
	return h.repo.List(c.Request.Context())
}
