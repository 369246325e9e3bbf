package barbershop

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// fakeRepo is an in-memory barbershop.Repository for usecase tests.
type fakeRepo struct {
	shops     map[string]*models.Barbershop
	amenities map[string]models.Amenity
	hours     map[string][]models.OpeningHour
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:     make(map[string]*models.Barbershop),
		amenities: make(map[string]models.Amenity),
		hours:     make(map[string][]models.OpeningHour),
	}
}

func (f *fakeRepo) addAmenity(name string) models.Amenity {
	a := models.Amenity{ID: uuid.NewString(), Name: name, Icon: name}
	f.amenities[a.ID] = a
	return a
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Barbershop, error) {
	shop, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	copied := *shop
	copied.OpeningHours = f.hours[id]
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]models.Barbershop, error) {
	out := make([]models.Barbershop, 0, len(f.shops))
	for _, s := range f.shops {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, userID string) ([]models.Barbershop, error) {
	var out []models.Barbershop
	for _, s := range f.shops {
		if s.CreatedBy == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) Search(_ context.Context, _ string) ([]models.Barbershop, error) {
	return f.List(context.Background())
}

func (f *fakeRepo) Create(_ context.Context, shop *models.Barbershop) error {
	if shop.ID == "" {
		shop.ID = uuid.NewString()
	}
	stored := *shop
	f.shops[shop.ID] = &stored
	return nil
}

func (f *fakeRepo) Save(_ context.Context, shop *models.Barbershop) error {
	stored := *shop
	existing, ok := f.shops[shop.ID]
	if ok {
		stored.Amenities = existing.Amenities
	}
	stored.OpeningHours = nil
	f.shops[shop.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.shops, id)
	delete(f.hours, id)
	return nil
}

func (f *fakeRepo) FindAmenitiesByIDs(_ context.Context, ids []string) ([]models.Amenity, error) {
	var out []models.Amenity
	for _, id := range ids {
		if a, ok := f.amenities[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReplaceAmenities(_ context.Context, shop *models.Barbershop, amenities []models.Amenity) error {
	stored, ok := f.shops[shop.ID]
	if ok {
		stored.Amenities = amenities
	}
	return nil
}

func (f *fakeRepo) ReplaceOpeningHours(_ context.Context, shopID string, hours []models.OpeningHour) error {
	f.hours[shopID] = hours
	return nil
}

func barberUser() *models.User {
	return &models.User{ID: uuid.NewString(), Email: "barber@example.com", Role: models.RoleBarber, IsActive: true}
}

func clientUser() *models.User {
	return &models.User{ID: uuid.NewString(), Email: "client@example.com", Role: models.RoleClient, IsActive: true}
}

func adminUser() *models.User {
	return &models.User{ID: uuid.NewString(), Email: "admin@example.com", Role: models.RoleAdmin, IsActive: true}
}
