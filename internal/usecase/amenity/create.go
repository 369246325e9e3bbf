package amenity

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/amenity"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

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
	name string,
	icon string,
) (*models.Amenity, error) {

	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrConflict("amenity_name_taken", "Amenity with this name already exists.")
	}

	a := &models.Amenity{Name: name, Icon: icon}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "amenity_created",
		Entity:   "amenity",
		EntityID: &a.ID,
	})

	return a, nil
}
