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

type StockRecordRepository interface {
	WithDB(db db.DB) StockRecordRepository
	ListAllStockRecords(ctx context.Context) ([]model.StockRecord, error)
	CreateStockRecord(ctx context.Context, record model.StockRecord) error
	// FindStockRecordByNameFold resolves a record by case-insensitive product
	// name match. The add path never uses this; only reduce folds case.
	FindStockRecordByNameFold(ctx context.Context, productName string) (model.StockRecord, error)
	UpdateStockRecordQuantity(ctx context.Context, id uuid.UUID, quantity int) error
}

type stockRecordRepository struct {
	db db.DB
}

func NewStockRecordRepository(db db.DB) StockRecordRepository {
	return &stockRecordRepository{db: db}
}

func (r stockRecordRepository) WithDB(db db.DB) StockRecordRepository {
	return &stockRecordRepository{db: db}
}

func (r stockRecordRepository) ListAllStockRecords(ctx context.Context) ([]model.StockRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_name, quantity, created_at, updated_at
		FROM stock_records
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list all stock records: %w", err)
	}
	defer rows.Close()

	records := make([]model.StockRecord, 0)
	for rows.Next() {
		var rec model.StockRecord
		if err := rows.Scan(&rec.ID, &rec.ProductName, &rec.Quantity,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock records: %w", err)
	}

	return records, nil
}

func (r stockRecordRepository) CreateStockRecord(ctx context.Context, record model.StockRecord) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO stock_records (id, product_name, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.ProductName, record.Quantity, record.CreatedAt, record.UpdatedAt); err != nil {
		return fmt.Errorf("create stock record: %w", err)
	}

	return nil
}

func (r stockRecordRepository) FindStockRecordByNameFold(ctx context.Context, productName string) (model.StockRecord, error) {
	var rec model.StockRecord
	err := r.db.QueryRow(ctx, `
		SELECT id, product_name, quantity, created_at, updated_at
		FROM stock_records
		WHERE LOWER(product_name) = LOWER($1)
		ORDER BY created_at
		LIMIT 1
	`, productName).Scan(&rec.ID, &rec.ProductName, &rec.Quantity,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StockRecord{}, apperr.StockRecordNotFoundErr
		}
		return model.StockRecord{}, fmt.Errorf("find stock record by name: %w", err)
	}

	return rec, nil
}

func (r stockRecordRepository) UpdateStockRecordQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE stock_records
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1
	`, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock record quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.StockRecordNotFoundErr
	}

	return nil
}
