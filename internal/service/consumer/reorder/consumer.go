package reorderconsumer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/kafka"
	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
)

type Converter interface {
	InventoryCheckedToModel(data []byte) (model.InventoryChecked, error)
}

type ReorderRepository interface {
	UpsertOpen(ctx context.Context, req *model.ReorderRequest) error
	CloseOpen(ctx context.Context, equipmentID uuid.UUID) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	repo     ReorderRepository
}

func NewReorderConsumer(
	consumer kafka.Consumer,
	conv Converter,
	repo ReorderRepository,
) *service {
	return &service{consumer: consumer, conv: conv, repo: repo}
}

// RunInventoryCheckedConsume turns shortage lines from inventory.checked
// events into the open procurement backlog, and closes requests for lines
// whose shortage is gone.
func (s *service) RunInventoryCheckedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting inventory checked consumer")

	if err := s.consumer.Consume(ctx, s.inventoryCheckedHandler); err != nil {
		logger.Error(ctx, "Consume from inventory.checked topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) inventoryCheckedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.InventoryCheckedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode InventoryCheckedRecord", logger.ErrorF(err))
		return fmt.Errorf("converter inventory_checked_to_model error: %w", err)
	}

	for _, line := range event.Lines {
		if line.Shortage > 0 {
			err = s.repo.UpsertOpen(ctx, &model.ReorderRequest{
				ProjectID:   event.ProjectID,
				EquipmentID: line.EquipmentID,
				Name:        line.Name,
				Quantity:    line.Shortage,
			})
		} else {
			err = s.repo.CloseOpen(ctx, line.EquipmentID)
		}
		if err != nil {
			logger.Error(ctx, "Failed to reconcile reorder request",
				logger.String("equipment_id", line.EquipmentID.String()),
				logger.ErrorF(err),
			)
			return err
		}
	}

	return nil
}
