package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

// ownerSummary keeps the password hash and flags out of the query entirely
// when a user is embedded in a barbershop response.
func ownerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "full_name", "email")
}

func (r *BarbershopGormRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Amenities").
		Preload("OpeningHours").
		Preload("Owner", ownerSummary)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BarbershopGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	err := r.withRelations(ctx).First(&shop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) List(
	ctx context.Context,
) ([]models.Barbershop, error) {

	var shops []models.Barbershop
	if err := r.withRelations(ctx).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *BarbershopGormRepository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]models.Barbershop, error) {

	var shops []models.Barbershop
	if err := r.withRelations(ctx).
		Where("created_by = ?", userID).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *BarbershopGormRepository) Search(
	ctx context.Context,
	query string,
) ([]models.Barbershop, error) {

	pattern := "%" + query + "%"

	var shops []models.Barbershop
	if err := r.withRelations(ctx).
		Where("name ILIKE ? OR address ILIKE ? OR about ILIKE ?", pattern, pattern, pattern).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BarbershopGormRepository) Create(
	ctx context.Context,
	shop *models.Barbershop,
) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *BarbershopGormRepository) Save(
	ctx context.Context,
	shop *models.Barbershop,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(shop).Error
}

func (r *BarbershopGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barbershop_id = ?", id).
			Delete(&models.OpeningHour{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM barbershop_amenities WHERE barbershop_id = ?", id,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Barbershop{}, "id = ?", id).Error
	})
}

// --------------------------------------------------
// Relations
// --------------------------------------------------

func (r *BarbershopGormRepository) FindAmenitiesByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Amenity, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var amenities []models.Amenity
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (r *BarbershopGormRepository) ReplaceAmenities(
	ctx context.Context,
	shop *models.Barbershop,
	amenities []models.Amenity,
) error {

	assoc := r.db.WithContext(ctx).Model(shop).Association("Amenities")
	if len(amenities) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&amenities)
}

func (r *BarbershopGormRepository) ReplaceOpeningHours(
	ctx context.Context,
	shopID string,
	hours []models.OpeningHour,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barbershop_id = ?", shopID).
			Delete(&models.OpeningHour{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}
