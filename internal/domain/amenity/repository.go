package amenity

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// Repository provides amenity persistence. Lookups return (nil, nil) when no
// matching row exists.
type Repository interface {
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Amenity, error)

	// FindByName matches the exact name, case-sensitive.
	FindByName(
		ctx context.Context,
		name string,
	) (*models.Amenity, error)

	List(
		ctx context.Context,
	) ([]models.Amenity, error)

	Search(
		ctx context.Context,
		query string,
	) ([]models.Amenity, error)

	Create(
		ctx context.Context,
		a *models.Amenity,
	) error

	Save(
		ctx context.Context,
		a *models.Amenity,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	// CountBarbershops reports how many barbershops reference the amenity.
	CountBarbershops(
		ctx context.Context,
		amenityID string,
	) (int64, error)

	// Popular ranks amenities by barbershop count, descending. Ties come back
	// in storage order.
	Popular(
		ctx context.Context,
		limit int,
	) ([]models.Amenity, error)

	// MapByBarbershops returns the amenities attached to each given shop id.
	MapByBarbershops(
		ctx context.Context,
		barbershopIDs []string,
	) (map[string][]models.Amenity, error)
}
