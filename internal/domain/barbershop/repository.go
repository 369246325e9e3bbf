package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// Repository loads and stores barbershops with their full relation graph
// (amenities, opening hours, owner summary). GetByID returns (nil, nil) when
// the shop does not exist.
type Repository interface {
	// -------- Barbershop (read) --------
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Barbershop, error)

	List(
		ctx context.Context,
	) ([]models.Barbershop, error)

	ListByOwner(
		ctx context.Context,
		userID string,
	) ([]models.Barbershop, error)

	Search(
		ctx context.Context,
		query string,
	) ([]models.Barbershop, error)

	// -------- Barbershop (write) --------
	Create(
		ctx context.Context,
		shop *models.Barbershop,
	) error

	Save(
		ctx context.Context,
		shop *models.Barbershop,
	) error

	// Delete removes the shop, its opening hours and its amenity links in one
	// transaction. Cascade ordering is the repository's contract, not the
	// caller's.
	Delete(
		ctx context.Context,
		id string,
	) error

	// -------- Relations --------
	FindAmenitiesByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Amenity, error)

	ReplaceAmenities(
		ctx context.Context,
		shop *models.Barbershop,
		amenities []models.Amenity,
	) error

	// ReplaceOpeningHours deletes all existing rows for the shop and inserts
	// the new set atomically.
	ReplaceOpeningHours(
		ctx context.Context,
		shopID string,
		hours []models.OpeningHour,
	) error
}
