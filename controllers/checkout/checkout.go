package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naxo-910/elsabor-api/cart"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/checkout"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/naxo-910/elsabor-api/storage"
)

// POST /user/checkout
// Runs a checkout attempt over the user's cart. The response carries the
// state-machine outcome and the navigation hint for the collaborator.
func SubmitCheckout(orch *checkout.Orchestrator, cat *catalog.Store, kv *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(int)

		var form models.CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ledger := cart.NewLedger(cat, kv, userID)
		result := orch.Submit(form, ledger)

		switch result.State {
		case checkout.StateRejected:
			c.JSON(http.StatusUnprocessableEntity, result)
		case checkout.StatePaymentFailed:
			if summary, ok := orch.LastOrder(); ok {
				broadcastOrder(summary)
			}
			c.JSON(http.StatusPaymentRequired, result)
		default:
			if summary, ok := orch.LastOrder(); ok {
				broadcastOrder(summary)
			}
			c.JSON(http.StatusOK, result)
		}
	}
}

// GET /user/orders/last
// Returns the summary of the most recent checkout attempt, for the outcome
// page.
func GetLastOrder(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, ok := orch.LastOrder()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No order has been placed"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
