package menuhandler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	menuhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/menu"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/menu/mocks"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/slogdiscard"
)

func newTestHandler(service *mocks.Service) *menuhandler.Handler {
	logger := slogdiscard.NewDiscardLogger()
	return menuhandler.New(logger, service)
}

func TestHandler_Page(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		setupMock    func(s *mocks.Service)
		expectedCode int
		checkBody    bool
	}{
		{
			name:   "Success",
			target: "/menu?page=2",
			setupMock: func(s *mocks.Service) {
				s.On("Page", mock.Anything, "", 2).Return(models.MenuPage{
					Items:      []models.MenuItem{{Id: 7, Name: "Salad"}},
					Page:       2,
					TotalPages: 2,
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody:    true,
		},
		{
			name:   "Category filter",
			target: "/menu?category=Beverage",
			setupMock: func(s *mocks.Service) {
				s.On("Page", mock.Anything, "Beverage", 1).Return(models.MenuPage{
					Items:      []models.MenuItem{{Id: 2, Name: "Coffee"}},
					Page:       1,
					TotalPages: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid page",
			target:       "/menu?page=abc",
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Service error",
			target: "/menu",
			setupMock: func(s *mocks.Service) {
				s.On("Page", mock.Anything, "", 1).Return(models.MenuPage{}, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			ww := httptest.NewRecorder()

			handler.Page(ww, req)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)

			if tt.checkBody {
				var got models.MenuPage
				err := json.NewDecoder(resp.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, 2, got.Page)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Item(t *testing.T) {
	tests := []struct {
		name         string
		idStr        string
		setupMock    func(s *mocks.Service)
		expectedCode int
	}{
		{
			name:  "Success",
			idStr: "3",
			setupMock: func(s *mocks.Service) {
				s.On("Item", mock.Anything, 3).Return(models.MenuItem{Id: 3, Name: "Pizza"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			idStr:        "abc",
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Not found",
			idStr: "99",
			setupMock: func(s *mocks.Service) {
				s.On("Item", mock.Anything, 99).Return(models.MenuItem{}, serviceerrors.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodGet, "/menu/"+tt.idStr, nil)
			ww := httptest.NewRecorder()

			handler.Item(ww, req, tt.idStr)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Image(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Image", mock.Anything, 1).Return([]byte{0xff, 0xd8, 0xff}, nil)
		handler := newTestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/menu/1/image", nil)
		ww := httptest.NewRecorder()

		handler.Image(ww, req, "1")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
		mockService.AssertExpectations(t)
	})

	t.Run("No image", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("Image", mock.Anything, 1).Return(nil, serviceerrors.ErrNotFound)
		handler := newTestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/menu/1/image", nil)
		ww := httptest.NewRecorder()

		handler.Image(ww, req, "1")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_AddItem(t *testing.T) {
	tests := []struct {
		name         string
		body         []byte
		setupMock    func(s *mocks.Service)
		expectedCode int
	}{
		{
			name: "Success",
			body: []byte(`{"name":"Dosa","price":12000,"rating":4.4,"category":"Main Course","tags":["veg"]}`),
			setupMock: func(s *mocks.Service) {
				item := models.MenuItem{Name: "Dosa", Price: 12000, Rating: 4.4, Category: "Main Course", Tags: []string{"veg"}}
				created := item
				created.Id = 9
				s.On("AddItem", mock.Anything, item).Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid JSON",
			body:         []byte("{invalid json"),
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Validation failed",
			body:         []byte(`{"name":"","price":0,"category":""}`),
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown category",
			body: []byte(`{"name":"Dosa","price":12000,"category":"Snacks"}`),
			setupMock: func(s *mocks.Service) {
				item := models.MenuItem{Name: "Dosa", Price: 12000, Category: "Snacks"}
				err := fmt.Errorf("unknown category: %w", serviceerrors.ErrInvalidItem)
				s.On("AddItem", mock.Anything, item).Return(models.MenuItem{}, err)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/menu", bytes.NewBuffer(tt.body))
			ww := httptest.NewRecorder()

			handler.AddItem(ww, req)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_DeleteItem(t *testing.T) {
	tests := []struct {
		name         string
		idStr        string
		setupMock    func(s *mocks.Service)
		expectedCode int
	}{
		{
			name:  "Success",
			idStr: "3",
			setupMock: func(s *mocks.Service) {
				s.On("DeleteItem", mock.Anything, 3).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid id",
			idStr:        "abc",
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Not found",
			idStr: "99",
			setupMock: func(s *mocks.Service) {
				s.On("DeleteItem", mock.Anything, 99).Return(serviceerrors.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodDelete, "/menu/"+tt.idStr, nil)
			ww := httptest.NewRecorder()

			handler.DeleteItem(ww, req, tt.idStr)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_UploadImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.Service)
		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		mockService.On("SetImage", mock.Anything, 1, raw).Return(nil)
		handler := newTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/menu/1/image", bytes.NewBuffer(raw))
		ww := httptest.NewRecorder()

		handler.UploadImage(ww, req, "1")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid id", func(t *testing.T) {
		mockService := new(mocks.Service)
		handler := newTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/menu/abc/image", nil)
		ww := httptest.NewRecorder()

		handler.UploadImage(ww, req, "abc")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Undecodable image", func(t *testing.T) {
		mockService := new(mocks.Service)
		raw := []byte("garbage")
		err := fmt.Errorf("decode image: %w", serviceerrors.ErrInvalidItem)
		mockService.On("SetImage", mock.Anything, 1, raw).Return(err)
		handler := newTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/menu/1/image", bytes.NewBuffer(raw))
		ww := httptest.NewRecorder()

		handler.UploadImage(ww, req, "1")
		resp := ww.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
