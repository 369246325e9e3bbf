package barbershop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
)

func TestAddImages(t *testing.T) {
	repo := newFakeRepo()
	owner := barberUser()
	shop := seedShop(t, repo, owner)

	uc := NewAddImages(repo, nil)

	updated, err := uc.Execute(context.Background(), owner, shop.ID, []string{
		"/uploads/barbershops/a.jpg",
		"/uploads/barbershops/b.jpg",
	})
	require.NoError(t, err)
	require.Len(t, updated.Images, 2)

	updated, err = uc.Execute(context.Background(), owner, shop.ID, []string{
		"/uploads/barbershops/c.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/uploads/barbershops/a.jpg",
		"/uploads/barbershops/b.jpg",
		"/uploads/barbershops/c.jpg",
	}, updated.Images)
}

func TestAddImagesForbiddenForNonOwner(t *testing.T) {
	repo := newFakeRepo()
	shop := seedShop(t, repo, barberUser())

	_, err := NewAddImages(repo, nil).Execute(context.Background(), clientUser(), shop.ID, []string{"/uploads/barbershops/a.jpg"})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestRemoveImage(t *testing.T) {
	repo := newFakeRepo()
	owner := barberUser()
	shop := seedShop(t, repo, owner)

	_, err := NewAddImages(repo, nil).Execute(context.Background(), owner, shop.ID, []string{
		"/uploads/barbershops/a.jpg",
		"/uploads/barbershops/b.jpg",
	})
	require.NoError(t, err)

	removed, err := NewRemoveImage(repo, nil).Execute(context.Background(), owner, shop.ID, "/uploads/barbershops/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/barbershops/a.jpg", removed)

	current, err := repo.GetByID(context.Background(), shop.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/barbershops/b.jpg"}, current.Images)
}

func TestRemoveImageNotAttached(t *testing.T) {
	repo := newFakeRepo()
	owner := barberUser()
	shop := seedShop(t, repo, owner)

	_, err := NewRemoveImage(repo, nil).Execute(context.Background(), owner, shop.ID, "/uploads/barbershops/nope.jpg")

	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "image_not_found"))
}

func TestCheckModify(t *testing.T) {
	repo := newFakeRepo()
	owner := barberUser()
	shop := seedShop(t, repo, owner)

	got, err := CheckModify(context.Background(), repo, owner, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, got.ID)

	_, err = CheckModify(context.Background(), repo, clientUser(), shop.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = CheckModify(context.Background(), repo, owner, "missing")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
