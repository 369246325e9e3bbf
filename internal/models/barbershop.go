package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barbershop struct {
	ID            string   `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string   `gorm:"size:255;not null" json:"name"`
	Address       string   `gorm:"type:text;not null" json:"address"`
	Phone         string   `gorm:"size:20" json:"phone"`
	LogoURL       string   `gorm:"size:500" json:"logo_url"`
	CoverImageURL string   `gorm:"size:500" json:"cover_image_url"`
	Rating        float64  `gorm:"type:decimal(2,1);default:0.0" json:"rating"`
	About         string   `gorm:"type:text" json:"about"`
	Images        []string `gorm:"serializer:json;type:jsonb" json:"images"`

	CreatedBy string `gorm:"type:uuid;not null;index" json:"created_by"`
	Owner     *User  `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner,omitempty"`

	Amenities    []Amenity     `gorm:"many2many:barbershop_amenities;" json:"amenities"`
	OpeningHours []OpeningHour `gorm:"foreignKey:BarbershopID" json:"opening_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barbershop) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
