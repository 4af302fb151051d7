package menuservice_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	menuservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/menu"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/menu/mocks"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/slogdiscard"
)

func newTestService(storage *mocks.Storage) *menuservice.MenuService {
	logger := slogdiscard.NewDiscardLogger()
	return menuservice.New(logger, storage)
}

func menuItems(n int) []models.MenuItem {
	items := make([]models.MenuItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, models.MenuItem{Id: i, Name: "Dish", Price: 1000, Category: models.CategoryMainCourse})
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		itemCount      int
		page           int
		perPage        int
		wantCount      int
		wantPage       int
		wantTotalPages int
		wantFirstId    int
	}{
		{name: "First page full", itemCount: 8, page: 1, perPage: 6, wantCount: 6, wantPage: 1, wantTotalPages: 2, wantFirstId: 1},
		{name: "Last page partial", itemCount: 8, page: 2, perPage: 6, wantCount: 2, wantPage: 2, wantTotalPages: 2, wantFirstId: 7},
		{name: "Exact multiple", itemCount: 12, page: 2, perPage: 6, wantCount: 6, wantPage: 2, wantTotalPages: 2, wantFirstId: 7},
		{name: "Page below range clamps to 1", itemCount: 8, page: 0, perPage: 6, wantCount: 6, wantPage: 1, wantTotalPages: 2, wantFirstId: 1},
		{name: "Page past end is empty", itemCount: 8, page: 5, perPage: 6, wantCount: 0, wantPage: 5, wantTotalPages: 2},
		{name: "No items", itemCount: 0, page: 1, perPage: 6, wantCount: 0, wantPage: 1, wantTotalPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, totalPages := menuservice.Paginate(menuItems(tt.itemCount), tt.page, tt.perPage)
			assert.Len(t, got, tt.wantCount)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantTotalPages, totalPages)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirstId, got[0].Id)
			}
		})
	}
}

func TestPage(t *testing.T) {
	t.Run("Filters by category", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListMenu", mock.Anything, models.CategoryBeverage).
			Return([]models.MenuItem{{Id: 2, Name: "Coffee", Price: 7020, Category: models.CategoryBeverage}}, nil)
		svc := newTestService(mockStorage)

		got, err := svc.Page(context.Background(), models.CategoryBeverage, 1)
		assert.NoError(t, err)
		assert.Len(t, got.Items, 1)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 1, got.TotalPages)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Context canceled", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListMenu", mock.Anything, "").Return([]models.MenuItem{}, context.Canceled)
		svc := newTestService(mockStorage)

		_, err := svc.Page(context.Background(), "", 1)
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)
	})
}

func TestAddItem(t *testing.T) {
	valid := models.MenuItem{
		Name:     "Dosa",
		Price:    12000,
		Rating:   4.4,
		Category: models.CategoryMainCourse,
		Tags:     []string{"veg"},
	}

	tests := []struct {
		name       string
		item       models.MenuItem
		mockReturn func(*mocks.Storage)
		wantErr    bool
		errType    error
	}{
		{
			name: "Success",
			item: valid,
			mockReturn: func(s *mocks.Storage) {
				created := valid
				created.Id = 9
				s.On("AddMenuItem", mock.Anything, valid).Return(created, nil)
			},
			wantErr: false,
		},
		{
			name:       "Missing name",
			item:       models.MenuItem{Price: 1000, Category: models.CategoryMainCourse},
			mockReturn: func(s *mocks.Storage) {},
			wantErr:    true,
			errType:    serviceerrors.ErrInvalidItem,
		},
		{
			name:       "Non-positive price",
			item:       models.MenuItem{Name: "Dosa", Price: 0, Category: models.CategoryMainCourse},
			mockReturn: func(s *mocks.Storage) {},
			wantErr:    true,
			errType:    serviceerrors.ErrInvalidItem,
		},
		{
			name:       "Rating out of range",
			item:       models.MenuItem{Name: "Dosa", Price: 1000, Rating: 5.5, Category: models.CategoryMainCourse},
			mockReturn: func(s *mocks.Storage) {},
			wantErr:    true,
			errType:    serviceerrors.ErrInvalidItem,
		},
		{
			name:       "Unknown category",
			item:       models.MenuItem{Name: "Dosa", Price: 1000, Category: "Snacks"},
			mockReturn: func(s *mocks.Storage) {},
			wantErr:    true,
			errType:    serviceerrors.ErrInvalidItem,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := new(mocks.Storage)
			tt.mockReturn(mockStorage)
			svc := newTestService(mockStorage)

			got, err := svc.AddItem(context.Background(), tt.item)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errType != nil {
					assert.ErrorIs(t, err, tt.errType)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, got.Id)
			}
			mockStorage.AssertExpectations(t)
		})
	}
}

func TestDeleteItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("DeleteMenuItem", mock.Anything, 3).Return(nil)
		svc := newTestService(mockStorage)

		assert.NoError(t, svc.DeleteItem(context.Background(), 3))
		mockStorage.AssertExpectations(t)
	})

	t.Run("NotFound error", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("DeleteMenuItem", mock.Anything, 99).Return(databaseerrors.ErrNotFound)
		svc := newTestService(mockStorage)

		err := svc.DeleteItem(context.Background(), 99)
		assert.ErrorIs(t, err, serviceerrors.ErrNotFound)
	})
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSetImage(t *testing.T) {
	t.Run("Downscales wide images", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("SetMenuItemImage", mock.Anything, 1, mock.MatchedBy(func(data []byte) bool {
			img, _, err := image.Decode(bytes.NewReader(data))
			return err == nil && img.Bounds().Dx() == 400
		})).Return(nil)
		svc := newTestService(mockStorage)

		err := svc.SetImage(context.Background(), 1, pngBytes(t, 800, 600))
		assert.NoError(t, err)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Keeps small images at original size", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("SetMenuItemImage", mock.Anything, 1, mock.MatchedBy(func(data []byte) bool {
			img, _, err := image.Decode(bytes.NewReader(data))
			return err == nil && img.Bounds().Dx() == 100
		})).Return(nil)
		svc := newTestService(mockStorage)

		err := svc.SetImage(context.Background(), 1, pngBytes(t, 100, 80))
		assert.NoError(t, err)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Rejects garbage bytes", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		svc := newTestService(mockStorage)

		err := svc.SetImage(context.Background(), 1, []byte("not an image"))
		assert.ErrorIs(t, err, serviceerrors.ErrInvalidItem)
		mockStorage.AssertNotCalled(t, "SetMenuItemImage", mock.Anything, mock.Anything, mock.Anything)
	})
}
