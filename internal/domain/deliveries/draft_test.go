package deliveries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

func TestDraft_AddRemoveItems(t *testing.T) {
	d := NewDraft()
	d.SetSupplier(id.New())
	d.SetDate(types.MustParseDate("2024-05-01"))

	productA := id.New()
	productB := id.New()

	require.NoError(t, d.AddItem(productA, types.NewQuantityFromFloat64(2)))
	require.NoError(t, d.AddItem(productB, types.NewQuantityFromFloat64(1.5)))
	// Same product may appear as a second distinct line
	require.NoError(t, d.AddItem(productA, types.NewQuantityFromFloat64(3)))
	assert.Equal(t, 3, d.ItemCount())

	require.NoError(t, d.RemoveItem(1))
	assert.Equal(t, 2, d.ItemCount())

	snap := d.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, productA, snap.Items[0].ProductID)
	assert.Equal(t, productA, snap.Items[1].ProductID)
}

func TestDraft_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	d := NewDraft()

	assert.Error(t, d.AddItem(id.New(), types.Quantity(0)))
	assert.Error(t, d.AddItem(id.New(), types.NewQuantityFromFloat64(-1)))
	assert.Equal(t, 0, d.ItemCount())
}

func TestDraft_RemoveItem_OutOfRange(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddItem(id.New(), types.NewQuantityFromFloat64(1)))

	assert.Error(t, d.RemoveItem(-1))
	assert.Error(t, d.RemoveItem(1))
	assert.Equal(t, 1, d.ItemCount())
}

func TestDraft_SnapshotIsolation(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddItem(id.New(), types.NewQuantityFromFloat64(1)))

	snap := d.Snapshot()
	require.NoError(t, d.AddItem(id.New(), types.NewQuantityFromFloat64(2)))

	// Later edits must not leak into the snapshot
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 2, d.ItemCount())
}

func TestDraftFromDelivery_DropsStoredPrices(t *testing.T) {
	doc := NewDelivery(id.New(), types.MustParseDate("2024-05-01"))
	doc.Items = []DeliveryItem{
		{
			LineNo:    1,
			ProductID: id.New(),
			Quantity:  types.NewQuantityFromFloat64(2),
			UnitPrice: types.MustMoney("10.00"),
			LineCost:  types.MustMoney("20.00"),
		},
	}

	draft := DraftFromDelivery(doc)
	snap := draft.Snapshot()

	assert.Equal(t, doc.SupplierID, snap.SupplierID)
	assert.True(t, doc.Date.Equal(snap.Date))
	require.Len(t, snap.Items, 1)
	assert.Equal(t, doc.Items[0].ProductID, snap.Items[0].ProductID)
	assert.Equal(t, doc.Items[0].Quantity, snap.Items[0].Quantity)
}
