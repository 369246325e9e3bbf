package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// ======================================================
// ADD IMAGES
// ======================================================

// AddImages appends already-stored image URLs to a shop's gallery. Upload and
// processing happen before this runs; the usecase only owns the authorization
// check and the list mutation.
type AddImages struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddImages(repo domain.Repository, audit *audit.Dispatcher) *AddImages {
	return &AddImages{repo: repo, audit: audit}
}

func (uc *AddImages) Execute(
	ctx context.Context,
	caller *models.User,
	shopID string,
	urls []string,
) (*models.Barbershop, error) {

	shop, err := loadForModify(ctx, uc.repo, caller, shopID)
	if err != nil {
		return nil, err
	}

	shop.Images = append(shop.Images, urls...)
	if err := uc.repo.Save(ctx, shop); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_images_uploaded",
		Entity:   "barbershop",
		EntityID: &shop.ID,
		Metadata: map[string]int{"count": len(urls)},
	})

	return uc.repo.GetByID(ctx, shop.ID)
}

// CheckModify exposes the owner-or-admin gate for callers that must authorize
// before doing side-effecting work, like writing uploads to disk.
func CheckModify(
	ctx context.Context,
	repo domain.Repository,
	caller *models.User,
	shopID string,
) (*models.Barbershop, error) {
	return loadForModify(ctx, repo, caller, shopID)
}

// ======================================================
// REMOVE IMAGE
// ======================================================

type RemoveImage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveImage(repo domain.Repository, audit *audit.Dispatcher) *RemoveImage {
	return &RemoveImage{repo: repo, audit: audit}
}

// Execute detaches the URL from the gallery and returns it so the caller can
// remove the underlying file.
func (uc *RemoveImage) Execute(
	ctx context.Context,
	caller *models.User,
	shopID string,
	url string,
) (string, error) {

	shop, err := loadForModify(ctx, uc.repo, caller, shopID)
	if err != nil {
		return "", err
	}

	kept := make([]string, 0, len(shop.Images))
	removed := false
	for _, img := range shop.Images {
		if img == url && !removed {
			removed = true
			continue
		}
		kept = append(kept, img)
	}
	if !removed {
		return "", httperr.ErrNotFound("image_not_found", "Image not found on this barbershop.")
	}

	shop.Images = kept
	if err := uc.repo.Save(ctx, shop); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "barbershop_image_removed",
		Entity:   "barbershop",
		EntityID: &shop.ID,
	})

	return url, nil
}
