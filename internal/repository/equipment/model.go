package repository

import (
	"time"

	"github.com/google/uuid"
)

// equipmentRow is one joined catalog row: the equipment line with its
// optional room, global part and legacy inventory record columns.
type equipmentRow struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Name           string
	NeededQuantity int64

	RoomID   *uuid.UUID
	RoomName *string

	GlobalPartID         *uuid.UUID
	GlobalPartName       *string
	GlobalQuantityOnHand *int64
	LastInventoryCheck   *time.Time

	InventoryID             *uuid.UUID
	InventoryQuantityOnHand *int64
	NeedsOrder              *bool
	InventoryUpdatedAt      *time.Time
}
