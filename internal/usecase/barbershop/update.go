package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateInput follows set-or-keep semantics: nil means leave the field alone.
// A non-nil AmenityIDs or OpeningHours — even empty — fully replaces the
// existing set.
type UpdateInput struct {
	Name          *string
	Address       *string
	Phone         *string
	LogoURL       *string
	CoverImageURL *string
	About         *string

	AmenityIDs   *[]string
	OpeningHours *[]OpeningHourInput
}

// ======================================================
// USE CASE
// ======================================================

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	caller *models.User,
	id string,
	in UpdateInput,
) (*models.Barbershop, error) {

	shop, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, httperr.ErrNotFound("barbershop_not_found", "Barbershop not found.")
	}

	if !domain.CanModify(shop, caller.ID, caller.Role) {
		return nil, httperr.ErrForbidden("not_owner", "Unauthorized to update this barbershop.")
	}

	if in.Name != nil {
		shop.Name = *in.Name
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.Phone != nil {
		shop.Phone = *in.Phone
	}
	if in.LogoURL != nil {
		shop.LogoURL = *in.LogoURL
	}
	if in.CoverImageURL != nil {
		shop.CoverImageURL = *in.CoverImageURL
	}
	if in.About != nil {
		shop.About = *in.About
	}

	if err := uc.repo.Save(ctx, shop); err != nil {
		return nil, err
	}

	if in.AmenityIDs != nil {
		var amenities []models.Amenity
		if len(*in.AmenityIDs) > 0 {
			amenities, err = uc.repo.FindAmenitiesByIDs(ctx, *in.AmenityIDs)
			if err != nil {
				return nil, err
			}
		}
		if err := uc.repo.ReplaceAmenities(ctx, shop, amenities); err != nil {
			return nil, err
		}
	}

	if in.OpeningHours != nil {
		if err := uc.repo.ReplaceOpeningHours(ctx, shop.ID, toOpeningHours(shop.ID, *in.OpeningHours)); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_updated",
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	return uc.repo.GetByID(ctx, shop.ID)
}
