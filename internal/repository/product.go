package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/model"
	"github.com/wingscafe/inventory/internal/storage/db"
)

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) error
	UpdateProduct(ctx context.Context, product model.Product) error
	UpdateProductQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, category, price, quantity, created_at, updated_at
		FROM products
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r productRepository) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var p model.Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, category, price, quantity, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return p, nil
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, category, price, quantity, created_at, updated_at)
		VALUES (@id, @name, @description, @category, @price, @quantity, @created_at, @updated_at)
	`, pgx.NamedArgs{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"category":    product.Category,
		"price":       product.Price,
		"quantity":    product.Quantity,
		"created_at":  product.CreatedAt,
		"updated_at":  product.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = @name,
			description = @description,
			category = @category,
			price = @price,
			quantity = @quantity,
			updated_at = @updated_at
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"category":    product.Category,
		"price":       product.Price,
		"quantity":    product.Quantity,
		"updated_at":  product.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}

// UpdateProductQuantity writes an absolute quantity computed by the caller.
// There is no revision check: the last writer wins.
func (r productRepository) UpdateProductQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1
	`, id, quantity)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}
