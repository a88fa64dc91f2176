package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naxo-910/elsabor-api/cart"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/stock"
	"github.com/naxo-910/elsabor-api/storage"
)

type CartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

func sessionUserID(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(int), true
}

// GET /user/cart
// Returns the cart with each line annotated against live catalog stock.
func GetUserCart(cat *catalog.Store, kv *storage.Store, rec *stock.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		ledger := cart.NewLedger(cat, kv, userID)
		lines := ledger.Lines()

		c.JSON(http.StatusOK, gin.H{
			"items":           ledger.Entries(),
			"stock":           rec.Annotate(lines),
			"has_stock_issue": rec.HasAnyStockIssue(lines),
			"total":           ledger.Total(),
			"item_count":      ledger.ItemCount(),
		})
	}
}

// POST /user/cart
// Adds quantity units of a product; an existing line is incremented.
func AddCartItem(cat *catalog.Store, kv *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := cat.FindByID(input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		ledger := cart.NewLedger(cat, kv, userID)
		if err := ledger.AddItem(product.ID, input.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"items":      ledger.Entries(),
			"total":      ledger.Total(),
			"item_count": ledger.ItemCount(),
		})
	}
}

// PUT /user/cart/:product_id
// Sets a line's quantity; zero or less removes the line.
func SetCartItemQuantity(cat *catalog.Store, kv *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ledger := cart.NewLedger(cat, kv, userID)
		if err := ledger.SetQuantity(productID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":      ledger.Entries(),
			"total":      ledger.Total(),
			"item_count": ledger.ItemCount(),
		})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(cat *catalog.Store, kv *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		ledger := cart.NewLedger(cat, kv, userID)
		if err := ledger.RemoveItem(productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(cat *catalog.Store, kv *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		ledger := cart.NewLedger(cat, kv, userID)
		if err := ledger.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
