package menuhandler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	menuhandler "cafepos/internal/handlers/menu"
	"cafepos/internal/handlers/menu/mocks"
	"cafepos/internal/models"
	serviceerrors "cafepos/internal/service"
	"cafepos/pkg/lib/logger/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandler(service *mocks.Service) *menuhandler.Handler {
	return menuhandler.New(slogdiscard.NewDiscardLogger(), service)
}

func TestHandler_ListProducts(t *testing.T) {
	mockService := new(mocks.Service)
	mockService.On("ListProducts", mock.Anything, models.CategoryCoffee, "cap").Return([]models.Product{
		{Id: 3, Name: "Cappuccino", Price: 45000, Category: models.CategoryCoffee, IsActive: true},
	}, nil)
	h := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/products?category=coffee&search=cap", nil)
	rec := httptest.NewRecorder()
	h.ListProducts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "Cappuccino", products[0].Name)

	mockService.AssertExpectations(t)
}

func TestHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(s *mocks.Service)
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"name": "Americano", "price": 35000, "category": "coffee"}`,
			setupMock: func(s *mocks.Service) {
				want := models.Product{Name: "Americano", Price: 35000, Category: models.CategoryCoffee, IsActive: true}
				created := want
				created.Id = 9
				s.On("CreateProduct", mock.Anything, want).Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing name",
			body:         `{"price": 35000, "category": "coffee"}`,
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown category",
			body:         `{"name": "Pho", "price": 50000, "category": "soup"}`,
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative price",
			body:         `{"name": "Americano", "price": -1, "category": "coffee"}`,
			setupMock:    func(s *mocks.Service) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.Service)
			tt.setupMock(mockService)
			h := newTestHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.CreateProduct(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateProduct(t *testing.T) {
	t.Run("deactivates a product", func(t *testing.T) {
		mockService := new(mocks.Service)
		want := models.Product{Id: 7, Name: "Croissant", Price: 25000, Category: models.CategoryPastry, IsActive: false}
		mockService.On("UpdateProduct", mock.Anything, want).Return(want, nil)
		h := newTestHandler(mockService)

		body := `{"name": "Croissant", "price": 25000, "category": "pastry", "is_active": false}`
		req := httptest.NewRequest(http.MethodPut, "/products/7", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.UpdateProduct(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		mockService := new(mocks.Service)
		mockService.On("UpdateProduct", mock.Anything, mock.Anything).Return(models.Product{}, serviceerrors.ErrNotFound)
		h := newTestHandler(mockService)

		body := `{"name": "Croissant", "price": 25000, "category": "pastry"}`
		req := httptest.NewRequest(http.MethodPut, "/products/42", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.UpdateProduct(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestHandler_DeleteProduct(t *testing.T) {
	mockService := new(mocks.Service)
	mockService.On("DeleteProduct", mock.Anything, 7).Return(nil)
	h := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodDelete, "/products/7", nil)
	rec := httptest.NewRecorder()
	h.DeleteProduct(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_GetProduct_BadPath(t *testing.T) {
	mockService := new(mocks.Service)
	h := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/products/latte", nil)
	rec := httptest.NewRecorder()
	h.GetProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertExpectations(t)
}
