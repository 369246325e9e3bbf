package barbershop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
)

func TestCreateForbiddenForClients(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, nil)

	shop, err := uc.Execute(context.Background(), clientUser(), CreateInput{Name: "Fade Factory"})

	require.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.True(t, httperr.IsCode(err, "only_barbers_can_create"))
	assert.Empty(t, repo.shops)
}

func TestCreateByBarber(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, nil)
	owner := barberUser()

	shop, err := uc.Execute(context.Background(), owner, CreateInput{
		Name:    "Fade Factory",
		Address: "12 Main St",
		Phone:   "555-0101",
		About:   "Classic cuts.",
	})

	require.NoError(t, err)
	require.NotNil(t, shop)
	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, "Fade Factory", shop.Name)
	assert.Equal(t, owner.ID, shop.CreatedBy)
	assert.NotNil(t, shop.Images)
	assert.Empty(t, shop.Images)
}

func TestCreateByAdmin(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, nil)

	shop, err := uc.Execute(context.Background(), adminUser(), CreateInput{Name: "Admin Cuts"})

	require.NoError(t, err)
	assert.NotEmpty(t, shop.ID)
}

func TestCreateDropsUnknownAmenityIDs(t *testing.T) {
	repo := newFakeRepo()
	wifi := repo.addAmenity("Wi-Fi")
	uc := NewCreate(repo, nil)

	shop, err := uc.Execute(context.Background(), barberUser(), CreateInput{
		Name:       "Fade Factory",
		AmenityIDs: []string{wifi.ID, "does-not-exist"},
	})

	require.NoError(t, err)
	require.Len(t, shop.Amenities, 1)
	assert.Equal(t, wifi.ID, shop.Amenities[0].ID)
}

func TestCreateWithOpeningHours(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, nil)

	shop, err := uc.Execute(context.Background(), barberUser(), CreateInput{
		Name: "Fade Factory",
		OpeningHours: []OpeningHourInput{
			{Day: "Monday", OpenTime: "09:00", CloseTime: "18:00"},
			{Day: "Sunday", IsClosed: true},
		},
	})

	require.NoError(t, err)
	require.Len(t, shop.OpeningHours, 2)
	assert.Equal(t, "Monday", shop.OpeningHours[0].Day)
	assert.Equal(t, shop.ID, shop.OpeningHours[0].BarbershopID)

	sunday := shop.OpeningHours[1]
	assert.True(t, sunday.IsClosed)
	assert.Empty(t, sunday.OpenTime)
	assert.Empty(t, sunday.CloseTime)
}
