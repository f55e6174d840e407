package event

import (
	"context"
	"log/slog"
)

const TopicProductSold = "product.sold"

type ProductSoldEvent struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	SaleValue   float64 `json:"sale_value"`
	NewQuantity int     `json:"new_quantity"`
}

func (s *Service) handleProductSoldEvent(ctx context.Context, ev ProductSoldEvent) error {
	s.logger.InfoContext(ctx, "handling product sold event", slog.Any("event", ev))
	return nil
}
