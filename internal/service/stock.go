package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wingscafe/inventory/internal/event"
	"github.com/wingscafe/inventory/internal/ledger"
	"github.com/wingscafe/inventory/internal/model"
	"github.com/wingscafe/inventory/internal/repository"
	"github.com/wingscafe/inventory/internal/storage/db"
	"github.com/wingscafe/inventory/internal/storage/snapshot"
	"github.com/wingscafe/inventory/pkg/outbox"
	"github.com/wingscafe/inventory/pkg/ptr"
)

type SellResult struct {
	Product    model.Product
	SaleValue  float64
	TotalSales float64
}

type StockService interface {
	ListAllStockRecords(ctx context.Context) ([]model.StockRecord, error)
	// AddStock records incoming stock under the given product name. Each add
	// creates a new record; existing records with the same name are not
	// merged, and the name is kept exactly as given.
	AddStock(ctx context.Context, productName string, quantity int) (model.StockRecord, error)
	// ReduceStock removes quantity units from the record whose name matches
	// case-insensitively.
	ReduceStock(ctx context.Context, productName string, quantity int) (model.StockRecord, error)
	// Sell decrements a product's quantity and records the sale value in the
	// running total.
	Sell(ctx context.Context, productID uuid.UUID, quantity int) (SellResult, error)
}

type stockService struct {
	logger          *slog.Logger
	db              db.DB
	productRepo     repository.ProductRepository
	stockRecordRepo repository.StockRecordRepository
	outboxMsgRepo   repository.OutboxMsgRepository
	sales           *SalesAggregator
	snapshots       snapshot.Store
}

func NewStockService(
	logger *slog.Logger,
	db db.DB,
	productRepo repository.ProductRepository,
	stockRecordRepo repository.StockRecordRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
	sales *SalesAggregator,
	snapshots snapshot.Store,
) StockService {
	return &stockService{
		logger:          logger.With(slog.String("service", "stock")),
		db:              db,
		productRepo:     productRepo,
		stockRecordRepo: stockRecordRepo,
		outboxMsgRepo:   outboxMsgRepo,
		sales:           sales,
		snapshots:       snapshots,
	}
}

func (s *stockService) ListAllStockRecords(ctx context.Context) ([]model.StockRecord, error) {
	records, err := s.stockRecordRepo.ListAllStockRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock record repository list all stock records: %w", err)
	}

	return records, nil
}

func (s *stockService) AddStock(ctx context.Context, productName string, quantity int) (model.StockRecord, error) {
	newQuantity, err := ledger.Add(0, quantity)
	if err != nil {
		return model.StockRecord{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.StockRecord{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	now := time.Now()
	record := model.StockRecord{
		ID:          id,
		ProductName: productName,
		Quantity:    newQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ev := event.StockMovementEvent{
		RecordID:    record.ID.String(),
		ProductName: record.ProductName,
		Direction:   event.StockMovementAdd,
		Quantity:    quantity,
		NewQuantity: record.Quantity,
	}

	if err := s.withStockMovement(ctx, ev, func(txDB db.DB) error {
		if err := s.stockRecordRepo.
			WithDB(txDB).
			CreateStockRecord(ctx, record); err != nil {
			return fmt.Errorf("stock record repository create stock record: %w", err)
		}
		return nil
	}); err != nil {
		return model.StockRecord{}, err
	}

	return record, nil
}

func (s *stockService) ReduceStock(ctx context.Context, productName string, quantity int) (model.StockRecord, error) {
	record, err := s.stockRecordRepo.FindStockRecordByNameFold(ctx, productName)
	if err != nil {
		return model.StockRecord{}, fmt.Errorf("stock record repository find stock record: %w", err)
	}

	newQuantity, err := ledger.Reduce(record.Quantity, quantity)
	if err != nil {
		return model.StockRecord{}, err
	}

	ev := event.StockMovementEvent{
		RecordID:    record.ID.String(),
		ProductName: record.ProductName,
		Direction:   event.StockMovementReduce,
		Quantity:    quantity,
		NewQuantity: newQuantity,
	}

	if err := s.withStockMovement(ctx, ev, func(txDB db.DB) error {
		if err := s.stockRecordRepo.
			WithDB(txDB).
			UpdateStockRecordQuantity(ctx, record.ID, newQuantity); err != nil {
			return fmt.Errorf("stock record repository update stock record quantity: %w", err)
		}
		return nil
	}); err != nil {
		return model.StockRecord{}, err
	}

	record.Quantity = newQuantity
	return record, nil
}

func (s *stockService) Sell(ctx context.Context, productID uuid.UUID, quantity int) (SellResult, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return SellResult{}, fmt.Errorf("product repository get product: %w", err)
	}

	sale, err := ledger.Sell(product.Quantity, quantity, product.Price)
	if err != nil {
		return SellResult{}, err
	}

	ev := event.ProductSoldEvent{
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Quantity:    quantity,
		SaleValue:   sale.SaleValue,
		NewQuantity: sale.NewQuantity,
	}

	evBytes, err := json.Marshal(ev)
	if err != nil {
		return SellResult{}, fmt.Errorf("marshal event: %w", err)
	}

	// The quantity written is the one computed from the snapshot read above.
	// Two sells racing on the same product both pass the ledger check and the
	// second write overwrites the first.
	if err := s.db.WithTx(ctx, func(txDB db.DB) error {
		if err := s.productRepo.
			WithDB(txDB).
			UpdateProductQuantity(ctx, product.ID, sale.NewQuantity); err != nil {
			return fmt.Errorf("product repository update product quantity: %w", err)
		}

		if err := s.outboxMsgRepo.
			WithDB(txDB).
			CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
				Topic:        event.TopicProductSold,
				Headers:      outbox.BuildHeaders(ctx),
				Payload:      evBytes,
				PartitionKey: ptr.New(product.ID.String()),
			}); err != nil {
			return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
		}

		return nil
	}); err != nil {
		return SellResult{}, fmt.Errorf("db with tx: %w", err)
	}

	total := s.sales.RecordSale(sale.SaleValue)
	product.Quantity = sale.NewQuantity

	s.refreshSnapshot(ctx)

	return SellResult{
		Product:    product,
		SaleValue:  sale.SaleValue,
		TotalSales: total,
	}, nil
}

// withStockMovement runs mutate and the outbox write for ev in one
// transaction, then refreshes the local stock snapshot.
func (s *stockService) withStockMovement(ctx context.Context, ev event.StockMovementEvent, mutate func(txDB db.DB) error) error {
	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := s.db.WithTx(ctx, func(txDB db.DB) error {
		if err := mutate(txDB); err != nil {
			return err
		}

		if err := s.outboxMsgRepo.
			WithDB(txDB).
			CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
				Topic:        event.TopicStockMovement,
				Headers:      outbox.BuildHeaders(ctx),
				Payload:      evBytes,
				PartitionKey: ptr.New(ev.ProductName),
			}); err != nil {
			return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	s.refreshSnapshot(ctx)
	return nil
}

// refreshSnapshot re-serializes the product stock levels to the local
// snapshot file. Failures are logged and do not fail the operation.
func (s *stockService) refreshSnapshot(ctx context.Context) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "error listing products for snapshot", slog.Any("error", err))
		return
	}

	levels := make([]snapshot.StockLevel, 0, len(products))
	for _, p := range products {
		levels = append(levels, snapshot.StockLevel{
			ProductID: p.ID,
			Quantity:  p.Quantity,
		})
	}

	if err := s.snapshots.Save(levels); err != nil {
		s.logger.ErrorContext(ctx, "error saving stock snapshot", slog.Any("error", err))
	}
}
