package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpeningHour is one day's schedule entry for a barbershop. Day and times are
// stored verbatim as free-form strings; rows are fully replaced whenever a
// barbershop's schedule changes, never merged.
type OpeningHour struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Day       string `gorm:"size:20;not null" json:"day"`
	OpenTime  string `gorm:"size:10" json:"open_time"`
	CloseTime string `gorm:"size:10" json:"close_time"`
	IsClosed  bool   `gorm:"default:false" json:"is_closed"`

	BarbershopID string `gorm:"type:uuid;not null;index" json:"barbershop_id"`
}

func (o *OpeningHour) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
