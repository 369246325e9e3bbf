package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

type AmenityGormRepository struct {
	db *gorm.DB
}

func NewAmenityGormRepository(db *gorm.DB) *AmenityGormRepository {
	return &AmenityGormRepository{db: db}
}

func (r *AmenityGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Amenity, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *AmenityGormRepository) FindByName(
	ctx context.Context,
	name string,
) (*models.Amenity, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *AmenityGormRepository) List(
	ctx context.Context,
) ([]models.Amenity, error) {

	var amenities []models.Amenity
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (r *AmenityGormRepository) Search(
	ctx context.Context,
	query string,
) ([]models.Amenity, error) {

	var amenities []models.Amenity
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (r *AmenityGormRepository) Create(
	ctx context.Context,
	a *models.Amenity,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AmenityGormRepository) Save(
	ctx context.Context,
	a *models.Amenity,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AmenityGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Delete(&models.Amenity{}, "id = ?", id).Error
}

func (r *AmenityGormRepository) CountBarbershops(
	ctx context.Context,
	amenityID string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Table("barbershop_amenities").
		Where("amenity_id = ?", amenityID).
		Count(&count).Error
	return count, err
}

func (r *AmenityGormRepository) Popular(
	ctx context.Context,
	limit int,
) ([]models.Amenity, error) {

	var amenities []models.Amenity
	err := r.db.WithContext(ctx).
		Table("amenities").
		Select("amenities.*, COUNT(barbershop_amenities.barbershop_id) AS usage_count").
		Joins("LEFT JOIN barbershop_amenities ON barbershop_amenities.amenity_id = amenities.id").
		Group("amenities.id").
		Order("usage_count DESC").
		Limit(limit).
		Find(&amenities).Error
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

func (r *AmenityGormRepository) MapByBarbershops(
	ctx context.Context,
	barbershopIDs []string,
) (map[string][]models.Amenity, error) {

	type amenityRow struct {
		BarbershopID string `gorm:"column:barbershop_id"`
		AmenityID    string `gorm:"column:amenity_id"`
		Name         string
		Icon         string
	}

	var rows []amenityRow
	err := r.db.WithContext(ctx).
		Table("amenities").
		Select("barbershop_amenities.barbershop_id, amenities.id AS amenity_id, amenities.name, amenities.icon").
		Joins("JOIN barbershop_amenities ON barbershop_amenities.amenity_id = amenities.id").
		Where("barbershop_amenities.barbershop_id IN ?", barbershopIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Amenity)
	for _, row := range rows {
		result[row.BarbershopID] = append(result[row.BarbershopID], models.Amenity{
			ID:   row.AmenityID,
			Name: row.Name,
			Icon: row.Icon,
		})
	}
	return result, nil
}

func (r *AmenityGormRepository) findOne(
	ctx context.Context,
	query string,
	args ...any,
) (*models.Amenity, error) {

	var a models.Amenity
	err := r.db.WithContext(ctx).Where(query, args...).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
