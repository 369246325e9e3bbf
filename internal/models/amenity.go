package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Amenity struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Icon string `gorm:"size:100;not null" json:"icon"`

	Barbershops []Barbershop `gorm:"many2many:barbershop_amenities;" json:"-"`
}

func (a *Amenity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
