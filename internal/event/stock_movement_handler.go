package event

import (
	"context"
	"log/slog"
)

const TopicStockMovement = "stock.movement"

// StockMovementDirection says which way a stock movement went.
type StockMovementDirection string

const (
	StockMovementAdd    StockMovementDirection = "add"
	StockMovementReduce StockMovementDirection = "reduce"
)

type StockMovementEvent struct {
	RecordID    string                 `json:"record_id"`
	ProductName string                 `json:"product_name"`
	Direction   StockMovementDirection `json:"direction"`
	Quantity    int                    `json:"quantity"`
	NewQuantity int                    `json:"new_quantity"`
}

func (s *Service) handleStockMovementEvent(ctx context.Context, ev StockMovementEvent) error {
	s.logger.InfoContext(ctx, "handling stock movement event", slog.Any("event", ev))
	return nil
}
