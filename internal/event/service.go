package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/wingscafe/inventory/internal/storage/mq"
)

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		TopicProductSold,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev ProductSoldEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal product sold event: %w", err)
			}

			if err := s.handleProductSoldEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle product sold event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register product sold event handler: %w", err)
	}

	if err := s.mqConsumer.RegisterHandler(
		TopicStockMovement,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev StockMovementEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal stock movement event: %w", err)
			}

			if err := s.handleStockMovementEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle stock movement event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register stock movement event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
