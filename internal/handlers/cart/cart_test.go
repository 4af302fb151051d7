package carthandler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	carthandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/cart/mocks"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/slogdiscard"
)

func newTestHandler(service *mocks.Service) *carthandler.Handler {
	logger := slogdiscard.NewDiscardLogger()
	return carthandler.New(logger, service)
}

func TestHandler_ViewCart(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(s *mocks.Service)
		expectedCode int
		checkBody    bool
	}{
		{
			name: "Success",
			setupMock: func(s *mocks.Service) {
				s.On("ViewCart", mock.Anything, 2).Return(models.Cart{
					UserId: 2,
					Items: []models.CartItem{
						{FoodId: 1, Name: "Burger", Price: 7023, Quantity: 2},
					},
					ItemsTotal: 14046,
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody:    true,
		},
		{
			name: "Context canceled",
			setupMock: func(s *mocks.Service) {
				s.On("ViewCart", mock.Anything, 2).Return(models.Cart{}, serviceerrors.ErrContextCanceled)
			},
			expectedCode: carthandler.StatusClientClosedRequest,
		},
		{
			name: "Deadline exceeded",
			setupMock: func(s *mocks.Service) {
				s.On("ViewCart", mock.Anything, 2).Return(models.Cart{}, serviceerrors.ErrDeadlineExceeded)
			},
			expectedCode: http.StatusGatewayTimeout,
		},
		{
			name: "Service error",
			setupMock: func(s *mocks.Service) {
				s.On("ViewCart", mock.Anything, 2).Return(models.Cart{}, errors.New("service error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			ww := httptest.NewRecorder()

			handler.ViewCart(ww, req, 2)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)

			if tt.checkBody {
				var got models.Cart
				err := json.NewDecoder(resp.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, int64(14046), got.ItemsTotal)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_AddToCart(t *testing.T) {
	tests := []struct {
		name         string
		body         []byte
		setupMock    func(s *mocks.Service)
		expectedCode int
		checkBody    bool
	}{
		{
			name:         "Empty body",
			body:         nil,
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid JSON",
			body:         []byte("{invalid json"),
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Validation failed",
			body:         []byte(`{"food_id":0,"quantity":0}`),
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative quantity",
			body:         []byte(`{"food_id":1,"quantity":-2}`),
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Success",
			body: []byte(`{"food_id":3,"quantity":2}`),
			setupMock: func(s *mocks.Service) {
				s.On("AddToCart", mock.Anything, 2, 3, 2).Return(models.CartItem{
					FoodId: 3, Name: "Pizza", Price: 23726, Quantity: 2,
				}, nil)
			},
			expectedCode: http.StatusCreated,
			checkBody:    true,
		},
		{
			name: "Unknown menu item",
			body: []byte(`{"food_id":99,"quantity":1}`),
			setupMock: func(s *mocks.Service) {
				s.On("AddToCart", mock.Anything, 2, 99, 1).Return(models.CartItem{}, serviceerrors.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service error",
			body: []byte(`{"food_id":3,"quantity":2}`),
			setupMock: func(s *mocks.Service) {
				s.On("AddToCart", mock.Anything, 2, 3, 2).Return(models.CartItem{}, errors.New("service failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewBuffer(tt.body))
			ww := httptest.NewRecorder()

			handler.AddToCart(ww, req, 2)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)

			if tt.checkBody && resp.StatusCode == http.StatusCreated {
				var got models.CartItem
				err := json.NewDecoder(resp.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, "Pizza", got.Name)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_RemoveFromCart(t *testing.T) {
	tests := []struct {
		name         string
		foodId       string
		setupMock    func(s *mocks.Service)
		expectedCode int
	}{
		{
			name:   "Success",
			foodId: "3",
			setupMock: func(s *mocks.Service) {
				s.On("RemoveFromCart", mock.Anything, 2, 3).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid foodId",
			foodId:       "abc",
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Not found error",
			foodId: "99",
			setupMock: func(s *mocks.Service) {
				s.On("RemoveFromCart", mock.Anything, 2, 99).Return(serviceerrors.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Service error",
			foodId: "3",
			setupMock: func(s *mocks.Service) {
				s.On("RemoveFromCart", mock.Anything, 2, 3).Return(errors.New("remove error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodDelete, "/cart/items/"+tt.foodId, nil)
			ww := httptest.NewRecorder()

			handler.RemoveFromCart(ww, req, 2, tt.foodId)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_ClearCart(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(s *mocks.Service)
		expectedCode int
	}{
		{
			name: "Success",
			setupMock: func(s *mocks.Service) {
				s.On("ClearCart", mock.Anything, 2).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service error",
			setupMock: func(s *mocks.Service) {
				s.On("ClearCart", mock.Anything, 2).Return(errors.New("clear error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			handler := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
			ww := httptest.NewRecorder()

			handler.ClearCart(ww, req, 2)
			resp := ww.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			mockService.AssertExpectations(t)
		})
	}
}
