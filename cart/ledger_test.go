package cart

import (
	"path/filepath"
	"testing"

	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/naxo-910/elsabor-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(t *testing.T) (*catalog.Store, *storage.Store) {
	t.Helper()
	cat := catalog.New([]models.Product{
		{ID: 1, Name: "Empanada Pino", Price: 1300, Stock: 60, Category: "Empanadas"},
		{ID: 2, Name: "Hand Roll", Price: 3000, Stock: 40, Category: "Sushi"},
		{ID: 3, Name: "Bebida Lata", Price: 1000, Stock: 100, Category: "Bebidas"},
	})
	kv, err := storage.Open(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	return cat, kv
}

func TestAddItemMergesLines(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)

	require.NoError(t, l.AddItem(1, 2))
	require.NoError(t, l.AddItem(1, 3))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)

	assert.ErrorIs(t, l.AddItem(1, 0), ErrBadQuantity)
	assert.ErrorIs(t, l.AddItem(1, -3), ErrBadQuantity)
	assert.True(t, l.IsEmpty())
}

func TestSetQuantity(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)
	require.NoError(t, l.AddItem(1, 2))

	require.NoError(t, l.SetQuantity(1, 7))
	assert.Equal(t, 7, l.Lines()[0].Quantity)

	// Idempotent.
	require.NoError(t, l.SetQuantity(1, 7))
	assert.Equal(t, 7, l.Lines()[0].Quantity)
}

func TestSetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)

	require.NoError(t, l.AddItem(1, 2))
	require.NoError(t, l.SetQuantity(1, 0))
	assert.True(t, l.IsEmpty())

	require.NoError(t, l.AddItem(1, 2))
	require.NoError(t, l.SetQuantity(1, -5))
	assert.True(t, l.IsEmpty())
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)
	require.NoError(t, l.AddItem(1, 2))

	require.NoError(t, l.SetQuantity(99, 4))
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)
	require.NoError(t, l.AddItem(1, 2))
	require.NoError(t, l.AddItem(2, 1))

	require.NoError(t, l.RemoveItem(1))
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ProductID)

	// Removing an absent line is a no-op.
	require.NoError(t, l.RemoveItem(1))
	assert.Len(t, l.Lines(), 1)
}

func TestTotalMatchesRecomputedSum(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)

	require.NoError(t, l.AddItem(1, 2)) // 2 × 1300
	require.NoError(t, l.AddItem(2, 1)) // 1 × 3000
	require.NoError(t, l.AddItem(3, 4)) // 4 × 1000
	assert.Equal(t, 2*1300.0+3000+4*1000, l.Total())
	assert.Equal(t, 7, l.ItemCount())

	require.NoError(t, l.SetQuantity(3, 1))
	require.NoError(t, l.RemoveItem(2))
	assert.Equal(t, 2*1300.0+1000, l.Total())
	assert.Equal(t, 3, l.ItemCount())

	require.NoError(t, l.Clear())
	assert.Equal(t, 0.0, l.Total())
	assert.Equal(t, 0, l.ItemCount())
}

func TestTotalFollowsLiveCatalogPrice(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)
	require.NoError(t, l.AddItem(1, 2))

	price := "2000"
	_, err := cat.Update(1, models.ProductPatch{Price: &price})
	require.NoError(t, err)

	// Lines join the catalog at read time, so the new price applies.
	assert.Equal(t, 4000.0, l.Total())
}

func TestDeletedProductContributesNothing(t *testing.T) {
	cat, kv := testDeps(t)
	l := NewLedger(cat, kv, 1)
	require.NoError(t, l.AddItem(1, 2))
	require.NoError(t, l.AddItem(2, 1))

	require.True(t, cat.Delete(2))

	assert.Equal(t, 2600.0, l.Total())
	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 0.0, entries[1].Product.Price)
}

func TestPersistenceRoundTrip(t *testing.T) {
	cat, kv := testDeps(t)

	l := NewLedger(cat, kv, 1)
	require.NoError(t, l.AddItem(1, 2))
	require.NoError(t, l.AddItem(3, 1))

	// A fresh ledger over the same key sees the same cart.
	reloaded := NewLedger(cat, kv, 1)
	assert.Equal(t, l.Lines(), reloaded.Lines())
	assert.Equal(t, l.Total(), reloaded.Total())

	// Carts are per user.
	other := NewLedger(cat, kv, 2)
	assert.True(t, other.IsEmpty())
}

func TestCorruptRecordLoadsEmpty(t *testing.T) {
	cat, kv := testDeps(t)
	require.NoError(t, kv.Put(storage.CartKey(1), "garbage"))

	l := NewLedger(cat, kv, 1)
	assert.True(t, l.IsEmpty())
}
