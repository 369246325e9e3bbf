package amenity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

func admin() *models.User {
	return &models.User{ID: uuid.NewString(), Email: "admin@example.com", Role: models.RoleAdmin, IsActive: true}
}

func TestCreateAmenity(t *testing.T) {
	repo := newFakeRepo()

	a, err := NewCreate(repo, nil).Execute(context.Background(), admin(), "Wi-Fi", "wifi")

	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Wi-Fi", a.Name)
	assert.Equal(t, "wifi", a.Icon)
}

func TestCreateAmenityDuplicateName(t *testing.T) {
	repo := newFakeRepo()
	repo.seed("Wi-Fi")

	_, err := NewCreate(repo, nil).Execute(context.Background(), admin(), "Wi-Fi", "wifi")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.True(t, httperr.IsCode(err, "amenity_name_taken"))
	assert.Len(t, repo.amenities, 1)
}

func TestUpdateAmenityNotFound(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewUpdate(repo, nil).Execute(context.Background(), admin(), "missing", UpdateInput{})

	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "amenity_not_found"))
}

func TestUpdateAmenityRename(t *testing.T) {
	repo := newFakeRepo()
	a := repo.seed("Wi-Fi")
	repo.seed("Parking")

	// Renaming onto another amenity's name conflicts.
	taken := "Parking"
	_, err := NewUpdate(repo, nil).Execute(context.Background(), admin(), a.ID, UpdateInput{Name: &taken})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "amenity_name_taken"))

	// Saving the amenity under its own current name is fine.
	same := "Wi-Fi"
	icon := "wifi-strong"
	updated, err := NewUpdate(repo, nil).Execute(context.Background(), admin(), a.ID, UpdateInput{Name: &same, Icon: &icon})
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", updated.Name)
	assert.Equal(t, "wifi-strong", updated.Icon)

	free := "Wireless"
	updated, err = NewUpdate(repo, nil).Execute(context.Background(), admin(), a.ID, UpdateInput{Name: &free})
	require.NoError(t, err)
	assert.Equal(t, "Wireless", updated.Name)
	assert.Equal(t, "wifi-strong", updated.Icon)
}

func TestDeleteAmenityInUse(t *testing.T) {
	repo := newFakeRepo()
	a := repo.seed("Wi-Fi", "shop-1", "shop-2")

	err := NewDelete(repo, nil).Execute(context.Background(), admin(), a.ID)

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.True(t, httperr.IsCode(err, "amenity_in_use"))
	assert.Len(t, repo.amenities, 1)
}

func TestDeleteAmenityUnused(t *testing.T) {
	repo := newFakeRepo()
	a := repo.seed("Wi-Fi")

	err := NewDelete(repo, nil).Execute(context.Background(), admin(), a.ID)

	require.NoError(t, err)
	assert.Empty(t, repo.amenities)
}

func TestDeleteAmenityNotFound(t *testing.T) {
	repo := newFakeRepo()

	err := NewDelete(repo, nil).Execute(context.Background(), admin(), "missing")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
