package amenity

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/amenity"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(
	ctx context.Context,
	caller *models.User,
	id string,
) error {

	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return httperr.ErrNotFound("amenity_not_found", "Amenity not found.")
	}

	// Referential guard lives here, not in the schema.
	count, err := uc.repo.CountBarbershops(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrConflict("amenity_in_use", "Cannot delete amenity that is associated with barbershops.")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "amenity_deleted",
		Entity:   "amenity",
		EntityID: &a.ID,
	})

	return nil
}
