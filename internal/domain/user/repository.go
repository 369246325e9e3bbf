package user

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// Repository provides user persistence. Lookups return (nil, nil) when no
// matching row exists.
type Repository interface {
	FindByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindActiveByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindActiveByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error

	Update(
		ctx context.Context,
		u *models.User,
	) error
}
