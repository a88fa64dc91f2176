package stock

import (
	"testing"

	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/stretchr/testify/assert"
)

func testReconciler() (*Reconciler, *catalog.Store) {
	cat := catalog.New([]models.Product{
		{ID: 1, Name: "Sopaipillas", Price: 350, Stock: 3},
		{ID: 2, Name: "Churros", Price: 350, Stock: 0},
		{ID: 3, Name: "Hand Roll", Price: 3000, Stock: 40},
	})
	return New(cat), cat
}

func TestOverStockLine(t *testing.T) {
	r, _ := testReconciler()

	st := r.LineStatus(models.CartLine{ProductID: 1, Quantity: 5})
	assert.Equal(t, 3, st.AvailableStock)
	assert.True(t, st.IsOverStock)
	assert.False(t, st.CanIncrement)
	assert.True(t, st.IsAvailable)
}

func TestLineWithinStock(t *testing.T) {
	r, _ := testReconciler()

	st := r.LineStatus(models.CartLine{ProductID: 3, Quantity: 2})
	assert.Equal(t, 40, st.AvailableStock)
	assert.False(t, st.IsOverStock)
	assert.True(t, st.CanIncrement)
	assert.True(t, st.IsAvailable)
}

func TestLineAtExactStockCannotIncrement(t *testing.T) {
	r, _ := testReconciler()

	st := r.LineStatus(models.CartLine{ProductID: 1, Quantity: 3})
	assert.False(t, st.IsOverStock)
	assert.False(t, st.CanIncrement)
}

func TestZeroStockProductIsUnavailable(t *testing.T) {
	r, _ := testReconciler()

	st := r.LineStatus(models.CartLine{ProductID: 2, Quantity: 1})
	assert.False(t, st.IsAvailable)
	assert.True(t, st.IsOverStock)
}

func TestDeletedProductHasZeroStock(t *testing.T) {
	r, cat := testReconciler()
	cat.Delete(3)

	st := r.LineStatus(models.CartLine{ProductID: 3, Quantity: 2})
	assert.Equal(t, 0, st.AvailableStock)
	assert.False(t, st.IsAvailable)
	assert.True(t, st.IsOverStock)
}

func TestHasAnyStockIssue(t *testing.T) {
	r, _ := testReconciler()

	clean := []models.CartLine{{ProductID: 3, Quantity: 2}}
	assert.False(t, r.HasAnyStockIssue(clean))

	over := append(clean, models.CartLine{ProductID: 1, Quantity: 5})
	assert.True(t, r.HasAnyStockIssue(over))

	assert.False(t, r.HasAnyStockIssue(nil))
}

func TestIssuesNameOffendingProducts(t *testing.T) {
	r, _ := testReconciler()

	issues := r.Issues([]models.CartLine{
		{ProductID: 3, Quantity: 2},
		{ProductID: 1, Quantity: 5},
		{ProductID: 2, Quantity: 1},
	})
	assert.Equal(t, []string{
		"Sopaipillas: requested 5, only 3 in stock",
		"Churros is no longer available",
	}, issues)
}
