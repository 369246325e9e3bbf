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

type CreateInput struct {
	Name          string
	Address       string
	Phone         string
	LogoURL       string
	CoverImageURL string
	About         string

	AmenityIDs   []string
	OpeningHours []OpeningHourInput
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	caller *models.User,
	in CreateInput,
) (*models.Barbershop, error) {

	if !domain.CanCreate(caller.Role) {
		return nil, httperr.ErrForbidden("only_barbers_can_create", "Only barbers can create barbershops.")
	}

	shop := &models.Barbershop{
		Name:          in.Name,
		Address:       in.Address,
		Phone:         in.Phone,
		LogoURL:       in.LogoURL,
		CoverImageURL: in.CoverImageURL,
		About:         in.About,
		Images:        []string{},
		CreatedBy:     caller.ID,
	}

	// Unknown amenity ids are dropped, not rejected.
	if len(in.AmenityIDs) > 0 {
		amenities, err := uc.repo.FindAmenitiesByIDs(ctx, in.AmenityIDs)
		if err != nil {
			return nil, err
		}
		shop.Amenities = amenities
	}

	if err := uc.repo.Create(ctx, shop); err != nil {
		return nil, err
	}

	if len(in.OpeningHours) > 0 {
		if err := uc.repo.ReplaceOpeningHours(ctx, shop.ID, toOpeningHours(shop.ID, in.OpeningHours)); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_created",
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	return uc.repo.GetByID(ctx, shop.ID)
}
