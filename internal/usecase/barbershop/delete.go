package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/barbershop"
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

	shop, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shop == nil {
		return httperr.ErrNotFound("barbershop_not_found", "Barbershop not found.")
	}

	if !domain.CanModify(shop, caller.ID, caller.Role) {
		return httperr.ErrForbidden("not_owner", "Unauthorized to delete this barbershop.")
	}

	if err := uc.repo.Delete(ctx, shop.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_deleted",
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	return nil
}
