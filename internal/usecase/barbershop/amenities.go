package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

func loadForModify(
	ctx context.Context,
	repo domain.Repository,
	caller *models.User,
	id string,
) (*models.Barbershop, error) {

	shop, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.ErrNotFound("barbershop_not_found", "Barbershop not found.")
	}
	if !domain.CanModify(shop, caller.ID, caller.Role) {
		return nil, httperr.ErrForbidden("not_owner", "Unauthorized to modify this barbershop.")
	}
	return shop, nil
}

// ======================================================
// ADD AMENITIES (set union)
// ======================================================

type AddAmenities struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddAmenities(repo domain.Repository, audit *audit.Dispatcher) *AddAmenities {
	return &AddAmenities{repo: repo, audit: audit}
}

func (uc *AddAmenities) Execute(
	ctx context.Context,
	caller *models.User,
	shopID string,
	amenityIDs []string,
) (*models.Barbershop, error) {

	shop, err := loadForModify(ctx, uc.repo, caller, shopID)
	if err != nil {
		return nil, err
	}

	found, err := uc.repo.FindAmenitiesByIDs(ctx, amenityIDs)
	if err != nil {
		return nil, err
	}

	attached := make(map[string]bool, len(shop.Amenities))
	for _, a := range shop.Amenities {
		attached[a.ID] = true
	}

	merged := shop.Amenities
	for _, a := range found {
		if !attached[a.ID] {
			merged = append(merged, a)
		}
	}

	if err := uc.repo.ReplaceAmenities(ctx, shop, merged); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_amenities_added",
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	return uc.repo.GetByID(ctx, shop.ID)
}

// ======================================================
// REMOVE AMENITY
// ======================================================

type RemoveAmenity struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAmenity(repo domain.Repository, audit *audit.Dispatcher) *RemoveAmenity {
	return &RemoveAmenity{repo: repo, audit: audit}
}

func (uc *RemoveAmenity) Execute(
	ctx context.Context,
	caller *models.User,
	shopID string,
	amenityID string,
) (*models.Barbershop, error) {

	shop, err := loadForModify(ctx, uc.repo, caller, shopID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Amenity, 0, len(shop.Amenities))
	for _, a := range shop.Amenities {
		if a.ID != amenityID {
			kept = append(kept, a)
		}
	}

	if err := uc.repo.ReplaceAmenities(ctx, shop, kept); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_amenity_removed",
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	return uc.repo.GetByID(ctx, shop.ID)
}
