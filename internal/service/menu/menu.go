package menuservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	constants "github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/config"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

// thumbnailWidth is the stored image width; uploads are downscaled to it.
const thumbnailWidth = 400

type MenuStorage interface {
	ListMenu(ctx context.Context, category string) ([]models.MenuItem, error)
	MenuItem(ctx context.Context, id int) (models.MenuItem, error)
	AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
	MenuItemImage(ctx context.Context, id int) ([]byte, error)
	SetMenuItemImage(ctx context.Context, id int, image []byte) error
}

type MenuService struct {
	log     *slog.Logger
	storage MenuStorage
}

func New(log *slog.Logger, storage MenuStorage) *MenuService {
	return &MenuService{
		log:     log,
		storage: storage,
	}
}

// Page returns one menu page, optionally filtered by category.
func (m *MenuService) Page(ctx context.Context, category string, page int) (models.MenuPage, error) {
	const op = "service.menu.Page"
	log := m.log.With("op", op)

	items, err := m.storage.ListMenu(ctx, category)
	if err != nil {
		log.Error("Failed to list menu", sl.Err(err))
		return models.MenuPage{}, mapStorageErr(op, err)
	}

	pageItems, page, totalPages := Paginate(items, page, constants.MenuItemsPerPage)
	return models.MenuPage{
		Items:      pageItems,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Paginate slices items into pages of perPage. Page numbers start at 1;
// out-of-range pages return an empty slice with the page clamped to 1 when
// below range.
func Paginate(items []models.MenuItem, page, perPage int) ([]models.MenuItem, int, int) {
	if page < 1 {
		page = 1
	}
	totalPages := (len(items)-1)/perPage + 1
	if len(items) == 0 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []models.MenuItem{}, page, totalPages
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

func (m *MenuService) Item(ctx context.Context, id int) (models.MenuItem, error) {
	const op = "service.menu.Item"

	item, err := m.storage.MenuItem(ctx, id)
	if err != nil {
		return models.MenuItem{}, mapStorageErr(op, err)
	}
	return item, nil
}

func (m *MenuService) AddItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	const op = "service.menu.AddItem"
	log := m.log.With("op", op)

	if item.Name == "" {
		return models.MenuItem{}, fmt.Errorf("%s: name is required: %w", op, serviceerrors.ErrInvalidItem)
	}
	if item.Price <= 0 {
		return models.MenuItem{}, fmt.Errorf("%s: price must be positive: %w", op, serviceerrors.ErrInvalidItem)
	}
	if item.Rating < 0 || item.Rating > 5 {
		return models.MenuItem{}, fmt.Errorf("%s: rating must be within 0..5: %w", op, serviceerrors.ErrInvalidItem)
	}
	if !models.KnownCategory(item.Category) {
		return models.MenuItem{}, fmt.Errorf("%s: unknown category %q: %w", op, item.Category, serviceerrors.ErrInvalidItem)
	}

	created, err := m.storage.AddMenuItem(ctx, item)
	if err != nil {
		log.Error("Failed to add menu item", sl.Err(err))
		return models.MenuItem{}, mapStorageErr(op, err)
	}

	log.Info("menu item added", "id", created.Id, "name", created.Name)
	return created, nil
}

func (m *MenuService) DeleteItem(ctx context.Context, id int) error {
	const op = "service.menu.DeleteItem"
	log := m.log.With("op", op)

	if err := m.storage.DeleteMenuItem(ctx, id); err != nil {
		return mapStorageErr(op, err)
	}

	log.Info("menu item deleted", "id", id)
	return nil
}

func (m *MenuService) Image(ctx context.Context, id int) ([]byte, error) {
	const op = "service.menu.Image"

	image, err := m.storage.MenuItemImage(ctx, id)
	if err != nil {
		return nil, mapStorageErr(op, err)
	}
	return image, nil
}

// SetImage decodes an uploaded image, downscales it to the thumbnail width
// and stores it as JPEG.
func (m *MenuService) SetImage(ctx context.Context, id int, raw []byte) error {
	const op = "service.menu.SetImage"
	log := m.log.With("op", op)

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Warn("Failed to decode image", sl.Err(err))
		return fmt.Errorf("%s: decode image: %w", op, serviceerrors.ErrInvalidItem)
	}

	if img.Bounds().Dx() > thumbnailWidth {
		img = imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		log.Error("Failed to encode image", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.storage.SetMenuItemImage(ctx, id, buf.Bytes()); err != nil {
		return mapStorageErr(op, err)
	}

	log.Info("menu item image updated", "id", id, "bytes", buf.Len())
	return nil
}

func mapStorageErr(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
	case errors.Is(err, databaseerrors.ErrNotFound):
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
