package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient = "client"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:255" json:"full_name"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Barbershops []Barbershop `gorm:"foreignKey:CreatedBy" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CanOwnBarbershop reports whether the role is allowed to own barbershops.
func (u *User) CanOwnBarbershop() bool {
	return u.Role == RoleBarber || u.Role == RoleAdmin
}
