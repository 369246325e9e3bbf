package amenity

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/barber-finder/internal/cache"
	domain "github.com/BruksfildServices01/barber-finder/internal/domain/amenity"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

const (
	defaultPopularLimit = 10
	popularCacheTTL     = 5 * time.Minute
)

// GetPopular ranks amenities by how many barbershops carry them. Results are
// cached in redis for a short window when a cache is configured; a cache
// failure falls through to the database.
type GetPopular struct {
	repo  domain.Repository
	cache *cache.Redis
}

func NewGetPopular(repo domain.Repository, cache *cache.Redis) *GetPopular {
	return &GetPopular{repo: repo, cache: cache}
}

func (uc *GetPopular) Execute(ctx context.Context, limit int) ([]models.Amenity, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	key := fmt.Sprintf("amenities:popular:%d", limit)

	var cached []models.Amenity
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err != nil {
		log.Println("popular amenities cache read:", err)
	} else if hit {
		return cached, nil
	}

	amenities, err := uc.repo.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetJSON(ctx, key, amenities, popularCacheTTL); err != nil {
		log.Println("popular amenities cache write:", err)
	}

	return amenities, nil
}
