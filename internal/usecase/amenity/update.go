package amenity

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/amenity"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

type UpdateInput struct {
	Name *string
	Icon *string
}

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
) (*models.Amenity, error) {

	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, httperr.ErrNotFound("amenity_not_found", "Amenity not found.")
	}

	// Renames re-check uniqueness against everything except the row itself.
	if in.Name != nil && *in.Name != a.Name {
		existing, err := uc.repo.FindByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, httperr.ErrConflict("amenity_name_taken", "Amenity with this name already exists.")
		}
		a.Name = *in.Name
	}
	if in.Icon != nil {
		a.Icon = *in.Icon
	}

	if err := uc.repo.Save(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "amenity_updated",
		Entity:   "amenity",
		EntityID: &a.ID,
	})

	return a, nil
}
