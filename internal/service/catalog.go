package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wingscafe/inventory/internal/model"
	"github.com/wingscafe/inventory/internal/repository"
)

// ProductOption is a predefined catalog entry used to populate the
// new-product form. Static configuration, not computed.
type ProductOption struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

var productOptions = []ProductOption{
	{Name: "Eggs", Category: "Food", Price: 60},
	{Name: "Meat", Category: "Food", Price: 100},
	{Name: "Pizza", Category: "Food", Price: 156},
	{Name: "Beer", Category: "Alcohol", Price: 58},
}

type CreateProductParams struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
}

type UpdateProductParams struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Quantity    *int
}

type CatalogService interface {
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ProductOptions() []ProductOption
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		productRepo: productRepo,
	}
}

func (s *catalogService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("Default description for %s", params.Name)
	}

	now := time.Now()
	product := model.Product{
		ID:          id,
		Name:        params.Name,
		Description: description,
		Category:    params.Category,
		Price:       params.Price,
		Quantity:    params.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return model.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.Category != nil {
		product.Category = *params.Category
	}
	if params.Price != nil {
		product.Price = *params.Price
	}
	if params.Quantity != nil {
		product.Quantity = *params.Quantity
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return model.Product{}, fmt.Errorf("product repository update product: %w", err)
	}

	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("product repository delete product: %w", err)
	}

	return nil
}

func (s *catalogService) ProductOptions() []ProductOption {
	options := make([]ProductOption, len(productOptions))
	copy(options, productOptions)
	return options
}
