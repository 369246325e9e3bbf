package amenity

import (
	"context"

	domain "github.com/BruksfildServices01/barber-finder/internal/domain/amenity"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// ByBarbershops maps each requested barbershop id to its amenities. Ids with
// no amenities are present with an empty slice so clients never have to probe
// for missing keys.
type ByBarbershops struct {
	repo domain.Repository
}

func NewByBarbershops(repo domain.Repository) *ByBarbershops {
	return &ByBarbershops{repo: repo}
}

func (uc *ByBarbershops) Execute(
	ctx context.Context,
	barbershopIDs []string,
) (map[string][]models.Amenity, error) {

	result := make(map[string][]models.Amenity, len(barbershopIDs))
	for _, id := range barbershopIDs {
		result[id] = []models.Amenity{}
	}

	if len(barbershopIDs) == 0 {
		return result, nil
	}

	found, err := uc.repo.MapByBarbershops(ctx, barbershopIDs)
	if err != nil {
		return nil, err
	}
	for id, amenities := range found {
		result[id] = amenities
	}

	return result, nil
}
