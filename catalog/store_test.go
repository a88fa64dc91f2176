package catalog

import (
	"testing"

	"github.com/naxo-910/elsabor-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return New([]models.Product{
		{ID: 1, Name: "Empanada Pino", Price: 1300, Stock: 60, Category: "Empanadas"},
		{ID: 2, Name: "Hand Roll", Price: 3000, Stock: 40, Category: "Sushi", IsOffer: true},
		{ID: 3, Name: "Bebida Lata", Price: 1000, Stock: 100, Category: "Bebidas"},
		{ID: 4, Name: "Churros", Price: 350, Stock: 90, Category: ""},
	})
}

func TestListReturnsCopy(t *testing.T) {
	s := testStore()

	list := s.List()
	require.Len(t, list, 4)
	list[0].Name = "mutated"

	fresh, err := s.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Empanada Pino", fresh.Name)
}

func TestFindByID(t *testing.T) {
	s := testStore()

	p, err := s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Hand Roll", p.Name)

	_, err = s.FindByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByCategoryIsCaseInsensitive(t *testing.T) {
	s := testStore()

	got := s.ListByCategory("eMpAnAdAs")
	require.Len(t, got, 1)
	assert.Equal(t, "Empanada Pino", got[0].Name)

	assert.Empty(t, s.ListByCategory("Postres"))
}

func TestListOffers(t *testing.T) {
	s := testStore()

	got := s.ListOffers()
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestCategoriesExcludeEmptyAndKeepOrder(t *testing.T) {
	s := testStore()
	s.Create(models.ProductDraft{Name: "Sopaipillas", Category: "Empanadas"})

	assert.Equal(t, []string{"Empanadas", "Sushi", "Bebidas"}, s.Categories())
}

func TestSearch(t *testing.T) {
	s := testStore()

	got := s.Search("roll")
	require.Len(t, got, 1)
	assert.Equal(t, "Hand Roll", got[0].Name)

	assert.Len(t, s.Search(""), 4)
}

func TestCreateAssignsNextIDAndCoerces(t *testing.T) {
	s := testStore()

	p := s.Create(models.ProductDraft{Name: "Sushi Mix", Price: "4500.5", Stock: "12"})
	assert.Equal(t, 5, p.ID)
	assert.Equal(t, 4500.5, p.Price)
	assert.Equal(t, 12, p.Stock)

	found, err := s.FindByID(5)
	require.NoError(t, err)
	assert.Equal(t, p, found)
}

func TestCreateCoercesInvalidInputToZero(t *testing.T) {
	s := testStore()

	p := s.Create(models.ProductDraft{Name: "Misterio", Price: "abc", Stock: "-7"})
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 0, p.Stock)
}

func TestCreateOnEmptyStoreStartsAtOne(t *testing.T) {
	s := New(nil)

	p := s.Create(models.ProductDraft{Name: "Primero"})
	assert.Equal(t, 1, p.ID)
}

func TestUpdateMergesFields(t *testing.T) {
	s := testStore()

	price := "1500"
	offer := true
	p, err := s.Update(1, models.ProductPatch{Price: &price, IsOffer: &offer})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, p.Price)
	assert.True(t, p.IsOffer)
	// Untouched fields survive the merge.
	assert.Equal(t, "Empanada Pino", p.Name)
	assert.Equal(t, 60, p.Stock)
}

func TestUpdateUnknownID(t *testing.T) {
	s := testStore()

	_, err := s.Update(99, models.ProductPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := testStore()

	assert.True(t, s.Delete(2))
	_, err := s.FindByID(2)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.False(t, s.Delete(2))
	assert.Len(t, s.List(), 3)
}

func TestDeletedIDIsNeverReused(t *testing.T) {
	s := testStore()

	require.True(t, s.Delete(4))
	p := s.Create(models.ProductDraft{Name: "Nuevo"})
	assert.Equal(t, 5, p.ID)
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	s := testStore()

	s.DecrementStock(2, 25)
	p, err := s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Stock)

	s.DecrementStock(2, 999)
	p, err = s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	// Unknown id is a no-op.
	s.DecrementStock(99, 1)
}
