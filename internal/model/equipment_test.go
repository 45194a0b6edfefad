package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEquipmentLineResolveStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		line EquipmentLine
		want StockResolution
	}

	tests := []testCase{
		{
			name: "no stock data resolves to none",
			line: EquipmentLine{ID: uuid.New(), NeededQuantity: 3},
			want: StockResolution{OnHand: 0, Source: StockSourceNone},
		},
		{
			name: "legacy record backs the line without a global link",
			line: EquipmentLine{
				ID:              uuid.New(),
				LegacyInventory: &InventoryRecord{QuantityOnHand: 4},
			},
			want: StockResolution{OnHand: 4, Source: StockSourceLegacy},
		},
		{
			name: "global part is authoritative",
			line: EquipmentLine{
				ID:         uuid.New(),
				GlobalPart: &GlobalPart{QuantityOnHand: 7},
			},
			want: StockResolution{OnHand: 7, Source: StockSourceGlobal},
		},
		{
			name: "global part wins even when a legacy record exists",
			line: EquipmentLine{
				ID:              uuid.New(),
				GlobalPart:      &GlobalPart{QuantityOnHand: 2},
				LegacyInventory: &InventoryRecord{QuantityOnHand: 99},
			},
			want: StockResolution{OnHand: 2, Source: StockSourceGlobal},
		},
		{
			name: "global part wins even at zero quantity",
			line: EquipmentLine{
				ID:              uuid.New(),
				GlobalPart:      &GlobalPart{QuantityOnHand: 0},
				LegacyInventory: &InventoryRecord{QuantityOnHand: 10},
			},
			want: StockResolution{OnHand: 0, Source: StockSourceGlobal},
		},
		{
			name: "negative global quantity clamps to zero",
			line: EquipmentLine{
				ID:         uuid.New(),
				GlobalPart: &GlobalPart{QuantityOnHand: -5},
			},
			want: StockResolution{OnHand: 0, Source: StockSourceGlobal},
		},
		{
			name: "negative legacy quantity clamps to zero",
			line: EquipmentLine{
				ID:              uuid.New(),
				LegacyInventory: &InventoryRecord{QuantityOnHand: -1},
			},
			want: StockResolution{OnHand: 0, Source: StockSourceLegacy},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.line.ResolveStock())
		})
	}
}

func TestNewStockStatus(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		needed   int64
		onHand   int64
		modified bool
		want     StockStatus
	}

	tests := []testCase{
		{
			name:   "shortage when on hand below needed",
			needed: 5, onHand: 2,
			want: StockStatus{OnHand: 2, Shortage: 3, HasStock: false},
		},
		{
			name:   "exact match has stock and no shortage",
			needed: 5, onHand: 5,
			want: StockStatus{OnHand: 5, Shortage: 0, HasStock: true},
		},
		{
			name:   "surplus never reports negative shortage",
			needed: 2, onHand: 10,
			want: StockStatus{OnHand: 10, Shortage: 0, HasStock: true},
		},
		{
			name:   "zero needed is always satisfied",
			needed: 0, onHand: 0,
			want: StockStatus{OnHand: 0, Shortage: 0, HasStock: true},
		},
		{
			name:   "modified flag is carried through",
			needed: 3, onHand: 1, modified: true,
			want: StockStatus{OnHand: 1, Shortage: 2, HasStock: false, Modified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NewStockStatus(tt.needed, tt.onHand, tt.modified))
		})
	}
}

func TestEquipmentLineRoomLabel(t *testing.T) {
	t.Parallel()

	withRoom := EquipmentLine{Room: &Room{ID: uuid.New(), Name: "Rack Room"}}
	assert.Equal(t, "Rack Room", withRoom.RoomLabel())

	var noRoom EquipmentLine
	assert.Equal(t, UnassignedRoomLabel, noRoom.RoomLabel())
}

func TestStockSourceString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "global", StockSourceGlobal.String())
	assert.Equal(t, "legacy", StockSourceLegacy.String())
	assert.Equal(t, "none", StockSourceNone.String())
	assert.Equal(t, "none", StockSource(42).String())
}

func TestCommitResultOk(t *testing.T) {
	t.Parallel()

	ok := CommitResult{Applied: []uuid.UUID{uuid.New()}}
	assert.True(t, ok.Ok())

	failed := CommitResult{Failed: []LineFailure{{EquipmentID: uuid.New(), Err: ErrCommitFailed}}}
	assert.False(t, failed.Ok())
}
