package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

// Overlay holds uncommitted per-line quantity edits. Every read path
// consults it before falling back to the resolved stored value; nothing
// here touches canonical data. One overlay belongs to one request/session
// and is not safe for concurrent use.
type Overlay struct {
	edits map[uuid.UUID]int64
}

func NewOverlay() *Overlay {
	return &Overlay{edits: make(map[uuid.UUID]int64)}
}

// Set stores a proposed quantity for the line, coercing the raw input the
// way the quantity field does: numeric values are floored, anything below
// zero or non-numeric becomes zero. Invalid input is never an error.
func (o *Overlay) Set(lineID uuid.UUID, raw string) {
	o.edits[lineID] = CoerceQuantity(raw)
}

// SetQuantity stores an already-numeric proposed quantity, clamped to zero.
func (o *Overlay) SetQuantity(lineID uuid.UUID, quantity int64) {
	if quantity < 0 {
		quantity = 0
	}
	o.edits[lineID] = quantity
}

// Clear drops the pending edit for one line.
func (o *Overlay) Clear(lineID uuid.UUID) {
	delete(o.edits, lineID)
}

// ClearAll empties the overlay. Called after a fully successful commit or
// an explicit discard.
func (o *Overlay) ClearAll() {
	clear(o.edits)
}

func (o *Overlay) Get(lineID uuid.UUID) (int64, bool) {
	v, ok := o.edits[lineID]
	return v, ok
}

func (o *Overlay) Len() int { return len(o.edits) }

// Edits returns a copy of the pending edits.
func (o *Overlay) Edits() map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(o.edits))
	for id, v := range o.edits {
		out[id] = v
	}
	return out
}

// EffectiveOnHand is the pending value for the line if one exists, else
// the resolved stored quantity.
func (o *Overlay) EffectiveOnHand(line *model.EquipmentLine) int64 {
	if o != nil {
		if v, ok := o.edits[line.ID]; ok {
			return v
		}
	}
	return line.ResolveStock().OnHand
}

// StatusFor derives the line's stock status under this overlay.
func (o *Overlay) StatusFor(line *model.EquipmentLine) model.StockStatus {
	modified := false
	if o != nil {
		_, modified = o.edits[line.ID]
	}
	return model.NewStockStatus(line.NeededQuantity, o.EffectiveOnHand(line), modified)
}

// CoerceQuantity turns arbitrary user input into a non-negative integer
// quantity: max(0, floor(numeric(raw))), non-numeric input degrades to 0.
func CoerceQuantity(raw string) int64 {
	raw = strings.TrimSpace(raw)

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	f = math.Floor(f)
	if f < 0 {
		return 0
	}
	if f > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}
