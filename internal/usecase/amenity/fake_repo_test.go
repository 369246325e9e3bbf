package amenity

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// fakeRepo is an in-memory amenity.Repository. usage maps amenity id to the
// shop ids carrying it.
type fakeRepo struct {
	amenities map[string]*models.Amenity
	usage     map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		amenities: make(map[string]*models.Amenity),
		usage:     make(map[string][]string),
	}
}

func (f *fakeRepo) seed(name string, shopIDs ...string) *models.Amenity {
	a := &models.Amenity{ID: uuid.NewString(), Name: name, Icon: name}
	f.amenities[a.ID] = a
	f.usage[a.ID] = shopIDs
	return a
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Amenity, error) {
	a, ok := f.amenities[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepo) FindByName(_ context.Context, name string) (*models.Amenity, error) {
	for _, a := range f.amenities {
		if a.Name == name {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(_ context.Context) ([]models.Amenity, error) {
	out := make([]models.Amenity, 0, len(f.amenities))
	for _, a := range f.amenities {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) Search(ctx context.Context, _ string) ([]models.Amenity, error) {
	return f.List(ctx)
}

func (f *fakeRepo) Create(_ context.Context, a *models.Amenity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	stored := *a
	f.amenities[a.ID] = &stored
	return nil
}

func (f *fakeRepo) Save(_ context.Context, a *models.Amenity) error {
	stored := *a
	f.amenities[a.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.amenities, id)
	delete(f.usage, id)
	return nil
}

func (f *fakeRepo) CountBarbershops(_ context.Context, amenityID string) (int64, error) {
	return int64(len(f.usage[amenityID])), nil
}

func (f *fakeRepo) Popular(_ context.Context, limit int) ([]models.Amenity, error) {
	all, _ := f.List(context.Background())
	sort.SliceStable(all, func(i, j int) bool {
		return len(f.usage[all[i].ID]) > len(f.usage[all[j].ID])
	})
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRepo) MapByBarbershops(_ context.Context, barbershopIDs []string) (map[string][]models.Amenity, error) {
	wanted := make(map[string]bool, len(barbershopIDs))
	for _, id := range barbershopIDs {
		wanted[id] = true
	}

	out := make(map[string][]models.Amenity)
	for amenityID, shopIDs := range f.usage {
		for _, shopID := range shopIDs {
			if wanted[shopID] {
				out[shopID] = append(out[shopID], *f.amenities[amenityID])
			}
		}
	}
	return out, nil
}
