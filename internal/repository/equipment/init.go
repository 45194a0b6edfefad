package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

type DemoSeeder interface {
	SeedDemo(
		ctx context.Context,
		rooms []*model.Room,
		parts []*model.GlobalPart,
		lines []*model.EquipmentLine,
		records []*model.InventoryRecord,
	) error
}

// DemoBootstrap seeds one demo project: a few rooms, a shared global-parts
// catalog and equipment lines spread across the three stock schemes
// (global link, legacy record, no tracking at all). Idempotent at the
// repository layer, rerunning does not duplicate rows.
func DemoBootstrap(ctx context.Context, s DemoSeeder) error {
	now := time.Now()
	projectID := uuid.New()

	rooms := []*model.Room{
		{ID: uuid.New(), Name: "Rack Room"},
		{ID: uuid.New(), Name: "Theater"},
		{ID: uuid.New(), Name: "Primary Bedroom"},
	}

	parts := make([]*model.GlobalPart, 0, 6)
	for range 6 {
		parts = append(parts, &model.GlobalPart{
			ID:                 uuid.New(),
			Name:               gofakeit.ProductName(),
			QuantityOnHand:     int64(gofakeit.Number(0, 24)),
			LastInventoryCheck: lo.ToPtr(now),
		})
	}

	lines := make([]*model.EquipmentLine, 0, 12)
	records := make([]*model.InventoryRecord, 0, 4)

	for i := range 12 {
		line := &model.EquipmentLine{
			ID:             uuid.New(),
			ProjectID:      projectID,
			Name:           fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.ProductName()),
			NeededQuantity: int64(gofakeit.Number(1, 8)),
		}
		if i%4 != 3 {
			line.Room = rooms[i%len(rooms)]
		}

		switch i % 3 {
		case 0:
			line.GlobalPart = parts[i%len(parts)]
		case 1:
			records = append(records, &model.InventoryRecord{
				ID:             uuid.New(),
				EquipmentID:    line.ID,
				QuantityOnHand: int64(gofakeit.Number(0, 10)),
				UpdatedAt:      lo.ToPtr(now),
			})
		}
		// Every third line stays untracked: resolves to source "none".

		lines = append(lines, line)
	}

	for _, rec := range records {
		needed := neededFor(lines, rec.EquipmentID)
		rec.NeedsOrder = rec.QuantityOnHand < needed
	}

	return s.SeedDemo(ctx, rooms, parts, lines, records)
}

func neededFor(lines []*model.EquipmentLine, equipmentID uuid.UUID) int64 {
	for _, l := range lines {
		if l.ID == equipmentID {
			return l.NeededQuantity
		}
	}
	return 0
}
