package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryChecked is published after every successful batch commit. One
// entry per committed line, so downstream procurement can react to lines
// that are still short.
type InventoryChecked struct {
	EventID   uuid.UUID
	ProjectID uuid.UUID
	CheckedAt time.Time
	Lines     []CheckedLine
}

type CheckedLine struct {
	EquipmentID    uuid.UUID
	Name           string
	Source         StockSource
	QuantityOnHand int64
	NeededQuantity int64
	Shortage       int64
	NeedsOrder     bool
}

// ReorderRequest is the procurement backlog row created from shortage
// lines of InventoryChecked events.
type ReorderRequest struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	EquipmentID uuid.UUID
	Name        string
	Quantity    int64
	Status      ReorderStatus
	RequestedAt *time.Time
	UpdatedAt   *time.Time
}

type ReorderStatus string

const (
	ReorderStatusOpen    ReorderStatus = "OPEN"
	ReorderStatusOrdered ReorderStatus = "ORDERED"
	ReorderStatusClosed  ReorderStatus = "CLOSED"
)
