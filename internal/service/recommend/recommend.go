package recommendservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/cache"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const (
	// DefaultLimit mirrors the three-card recommendation row.
	DefaultLimit = 3

	// MinTopRating is the floor for the top-rated shelf.
	MinTopRating = 4.3

	// DefaultBudget is the budget-shelf price ceiling, in paise (Rs 100).
	DefaultBudget = 10000

	popularCacheKey = "popular"
	popularCacheTTL = 60 * time.Second
)

type MenuLister interface {
	ListMenu(ctx context.Context, category string) ([]models.MenuItem, error)
	PopularItems(ctx context.Context, limit int) ([]models.MenuItem, error)
}

type RecommendService struct {
	log     *slog.Logger
	storage MenuLister
	cache   *cache.InMemory[[]models.MenuItem]
}

func New(log *slog.Logger, storage MenuLister) *RecommendService {
	return &RecommendService{
		log:     log,
		storage: storage,
		cache:   cache.NewInMemory[[]models.MenuItem](),
	}
}

// Popular returns the most-ordered items, cached for a minute. With no order
// history it falls back to the head of the menu.
func (r *RecommendService) Popular(ctx context.Context, limit int) ([]models.MenuItem, error) {
	const op = "service.recommend.Popular"
	log := r.log.With("op", op)

	if limit <= 0 {
		limit = DefaultLimit
	}

	key := fmt.Sprintf("%s:%d", popularCacheKey, limit)
	if items, ok := r.cache.Get(key); ok {
		return items, nil
	}

	items, err := r.storage.PopularItems(ctx, limit)
	if err != nil {
		log.Error("Failed to get popular items", sl.Err(err))
		return nil, mapStorageErr(op, err)
	}

	if len(items) == 0 {
		menu, err := r.storage.ListMenu(ctx, "")
		if err != nil {
			log.Error("Failed to list menu", sl.Err(err))
			return nil, mapStorageErr(op, err)
		}
		if len(menu) > limit {
			menu = menu[:limit]
		}
		items = menu
	}

	r.cache.Set(key, items, popularCacheTTL)
	return items, nil
}

// InvalidatePopular drops the cached popularity rankings; called after order
// placement or deletion. The cache only ever holds popular entries, so the
// whole thing goes, whatever limits were cached.
func (r *RecommendService) InvalidatePopular() {
	r.cache.Clear()
}

// TopRated returns items rated MinTopRating or above, best first.
func (r *RecommendService) TopRated(ctx context.Context, limit int) ([]models.MenuItem, error) {
	const op = "service.recommend.TopRated"
	log := r.log.With("op", op)

	if limit <= 0 {
		limit = DefaultLimit
	}

	menu, err := r.storage.ListMenu(ctx, "")
	if err != nil {
		log.Error("Failed to list menu", sl.Err(err))
		return nil, mapStorageErr(op, err)
	}

	return RankTopRated(menu, MinTopRating, limit), nil
}

// Budget returns items priced at or below maxPrice (paise), cheapest first.
func (r *RecommendService) Budget(ctx context.Context, maxPrice int64, limit int) ([]models.MenuItem, error) {
	const op = "service.recommend.Budget"
	log := r.log.With("op", op)

	if limit <= 0 {
		limit = DefaultLimit
	}
	if maxPrice <= 0 {
		maxPrice = DefaultBudget
	}

	menu, err := r.storage.ListMenu(ctx, "")
	if err != nil {
		log.Error("Failed to list menu", sl.Err(err))
		return nil, mapStorageErr(op, err)
	}

	return RankBudget(menu, maxPrice, limit), nil
}

func mapStorageErr(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func RankTopRated(items []models.MenuItem, minRating float64, limit int) []models.MenuItem {
	rated := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Rating >= minRating {
			rated = append(rated, item)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})
	if len(rated) > limit {
		rated = rated[:limit]
	}
	return rated
}

func RankBudget(items []models.MenuItem, maxPrice int64, limit int) []models.MenuItem {
	cheap := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Price <= maxPrice {
			cheap = append(cheap, item)
		}
	}
	sort.SliceStable(cheap, func(i, j int) bool {
		return cheap[i].Price < cheap[j].Price
	})
	if len(cheap) > limit {
		cheap = cheap[:limit]
	}
	return cheap
}
