package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserGormRepository) FindActiveByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return r.findOne(ctx, "id = ? AND is_active = ?", id, true)
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserGormRepository) FindActiveByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.findOne(ctx, "email = ? AND is_active = ?", email, true)
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) findOne(
	ctx context.Context,
	query string,
	args ...any,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
