package model

import (
	"time"

	"github.com/google/uuid"
)

// StockSource tells which backing store is authoritative for a line's
// on-hand quantity. It is resolved once per line from the joined row; every
// consumer switches on the tag instead of re-checking optional references.
type StockSource int32

const (
	StockSourceNone StockSource = iota
	StockSourceGlobal
	StockSourceLegacy
)

func (s StockSource) String() string {
	switch s {
	case StockSourceGlobal:
		return "global"
	case StockSourceLegacy:
		return "legacy"
	default:
		return "none"
	}
}

// UnassignedRoomLabel groups equipment lines that have no room reference.
const UnassignedRoomLabel = "Unassigned"

type Room struct {
	ID   uuid.UUID
	Name string
}

// GlobalPart is a centrally tracked catalog part shared across projects.
// Its quantity is authoritative for every equipment line that links to it.
type GlobalPart struct {
	ID uuid.UUID
	// Human-readable part name.
	Name string
	// Quantity currently on hand, never negative.
	QuantityOnHand int64
	// Stamped on every quantity write.
	LastInventoryCheck *time.Time
}

// InventoryRecord is the legacy per-project stock row. It only backs lines
// without a global part link; new data prefers GlobalPart.
type InventoryRecord struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	// Quantity currently on hand for this one project line.
	QuantityOnHand int64
	// Recomputed on every write as QuantityOnHand < NeededQuantity.
	NeedsOrder bool
	UpdatedAt  *time.Time
}

// EquipmentLine is one required-item row for a project, loaded with its
// joined room, global part and legacy inventory record.
type EquipmentLine struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	// Nil means the line is unassigned to a room.
	Room *Room
	// Quantity required for the project. The store keeps two generations of
	// this field; the repository coalesces them, newest first.
	NeededQuantity int64
	// Centrally tracked stock, wins over LegacyInventory when present.
	GlobalPart *GlobalPart
	// Per-project stock row, only meaningful without a GlobalPart link.
	LegacyInventory *InventoryRecord
}

// StockResolution is the authoritative on-hand quantity for a line and the
// store it came from.
type StockResolution struct {
	OnHand int64
	Source StockSource
}

// ResolveStock picks the backing store for the line's on-hand quantity.
// Missing data degrades to zero, never to an error.
func (l *EquipmentLine) ResolveStock() StockResolution {
	switch {
	case l.GlobalPart != nil:
		return StockResolution{
			OnHand: clampQuantity(l.GlobalPart.QuantityOnHand),
			Source: StockSourceGlobal,
		}
	case l.LegacyInventory != nil:
		return StockResolution{
			OnHand: clampQuantity(l.LegacyInventory.QuantityOnHand),
			Source: StockSourceLegacy,
		}
	default:
		return StockResolution{OnHand: 0, Source: StockSourceNone}
	}
}

// RoomLabel is the grouping key for catalog views. Pure function of the
// room reference, independent of sort order.
func (l *EquipmentLine) RoomLabel() string {
	if l.Room == nil {
		return UnassignedRoomLabel
	}
	return l.Room.Name
}

// StockStatus is the derived per-line state used for badges and dashboard
// counts. Never persisted.
type StockStatus struct {
	OnHand   int64
	Shortage int64
	HasStock bool
	Modified bool
}

// NewStockStatus derives the status from the required quantity and the
// effective on-hand value (pending edit if one exists, else resolved).
func NewStockStatus(needed, effectiveOnHand int64, modified bool) StockStatus {
	shortage := needed - effectiveOnHand
	if shortage < 0 {
		shortage = 0
	}

	return StockStatus{
		OnHand:   effectiveOnHand,
		Shortage: shortage,
		HasStock: effectiveOnHand >= needed,
		Modified: modified,
	}
}

// LineView pairs a line with its derived status.
type LineView struct {
	Line   *EquipmentLine
	Status StockStatus
}

// RoomGroup is one catalog section. Groups appear in first-line order with
// lines kept in catalog (name) order.
type RoomGroup struct {
	Label string
	Lines []LineView
}

// CatalogView is the grouped, status-annotated equipment catalog for one
// project.
type CatalogView struct {
	ProjectID uuid.UUID
	Groups    []RoomGroup
	// Aggregate shortage counters for the dashboard.
	TotalLines int
	ShortLines int
}

// CommitTarget is one pending edit resolved to its backing store: the
// proposed quantity plus everything the write and the follow-up event need.
type CommitTarget struct {
	EquipmentID uuid.UUID
	// Set only when Source is StockSourceGlobal.
	GlobalPartID   uuid.UUID
	Source         StockSource
	Name           string
	Quantity       int64
	NeededQuantity int64
}

// LineFailure reports one rejected write within a batch commit.
type LineFailure struct {
	EquipmentID uuid.UUID
	Err         error
}

// CommitResult is the outcome of a batch commit. Failed is empty on
// success; when it is not, the caller's overlay must be left untouched.
type CommitResult struct {
	Applied []uuid.UUID
	Failed  []LineFailure
}

func (r *CommitResult) Ok() bool { return len(r.Failed) == 0 }

func clampQuantity(q int64) int64 {
	if q < 0 {
		return 0
	}
	return q
}
