package barbershop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

func TestCanModify(t *testing.T) {
	shop := &models.Barbershop{ID: "shop-1", CreatedBy: "owner-1"}

	tests := []struct {
		name       string
		callerID   string
		callerRole string
		want       bool
	}{
		{"owner can modify", "owner-1", models.RoleBarber, true},
		{"admin can modify any shop", "someone-else", models.RoleAdmin, true},
		{"other barber cannot modify", "someone-else", models.RoleBarber, false},
		{"client cannot modify", "someone-else", models.RoleClient, false},
		{"owner id wins regardless of role", "owner-1", models.RoleClient, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(shop, tt.callerID, tt.callerRole))
		})
	}
}

func TestCanModifyNilShop(t *testing.T) {
	assert.False(t, CanModify(nil, "anyone", models.RoleAdmin))
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(models.RoleBarber))
	assert.True(t, CanCreate(models.RoleAdmin))
	assert.False(t, CanCreate(models.RoleClient))
	assert.False(t, CanCreate(""))
}
