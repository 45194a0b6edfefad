package invproducer

import (
	"context"
	"fmt"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/kafka"
)

type Converter interface {
	InventoryCheckedToBytes(m model.InventoryChecked) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewInventoryProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendInventoryChecked(ctx context.Context, event model.InventoryChecked) error {
	payload, err := s.conv.InventoryCheckedToBytes(event)
	if err != nil {
		return fmt.Errorf("converter inventory_checked_to_bytes error: %w", err)
	}

	if err := s.producer.Send(ctx, event.ProjectID[:], payload); err != nil {
		return fmt.Errorf("producer to inventory.checked topic error: %w", err)
	}

	return nil
}
