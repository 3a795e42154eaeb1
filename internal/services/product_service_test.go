package services_test

import (
	"fmt"
	"testing"
	"time"

	"smartstore/internal/models"
	"smartstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	catalog := []models.Product{
		{ID: "1", Name: "AeroSweep X1", Price: "449.00", Category: models.CategoryRobotVacuum, Featured: true},
		{ID: "2", Name: "HomeSense Plug", Price: "19.90", Category: models.CategorySmartDevice},
	}

	mockRepo.On("GetAll").Return(catalog, nil).Once()

	products, err := service.GetAllProducts("", false)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, catalog, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProductsFiltered(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	catalog := []models.Product{
		{ID: "1", Name: "AeroSweep X1", Price: "449.00", Category: models.CategoryRobotVacuum, Featured: true},
		{ID: "2", Name: "AeroSweep Mini", Price: "229.00", Category: models.CategoryRobotVacuum},
		{ID: "3", Name: "HomeSense Plug", Price: "19.90", Category: models.CategorySmartDevice, Featured: true},
	}

	// Category filter
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err := service.GetAllProducts(models.CategoryRobotVacuum, false)
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	// Featured filter
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err = service.GetAllProducts("", true)
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	// Both filters intersect
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err = service.GetAllProducts(models.CategorySmartDevice, true)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "3", products[0].ID)

	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "AeroSweep X1", Price: "449.00"}

	// Successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetRelatedProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	catalog := []models.Product{
		rankerProduct("A", models.CategoryRobotVacuum, false, base),
		rankerProduct("B", models.CategoryRobotVacuum, true, base.Add(time.Hour)),
		rankerProduct("R", models.CategoryRobotVacuum, false, base.Add(2*time.Hour)),
	}

	mockRepo.On("GetAll").Return(catalog, nil).Once()
	related, err := service.GetRelatedProducts("R", models.CategoryRobotVacuum, 10)
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, productIDs(related))

	// Catalog fetch failure belongs to this adapter, not the ranker.
	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()
	related, err = service.GetRelatedProducts("R", models.CategoryRobotVacuum, 10)
	assert.Error(t, err)
	assert.Nil(t, related)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "New Vacuum", Price: "299.00", Category: models.CategoryRobotVacuum, Stock: 20}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	assert.NoError(t, service.CreateProduct(newProduct))

	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err := service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	updated := &models.Product{ID: "1", Name: "AeroSweep X1 v2", Price: "479.00", Category: models.CategoryRobotVacuum}

	mockRepo.On("Update", updated).Return(nil).Once()
	assert.NoError(t, service.UpdateProduct(updated))

	missing := &models.Product{ID: "99", Name: "NonExistent", Price: "1.00", Category: models.CategorySmartDevice}
	mockRepo.On("Update", missing).Return(fmt.Errorf("product with ID 99 not found for update")).Once()
	err := service.UpdateProduct(missing)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("1"))

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err := service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
