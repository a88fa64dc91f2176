package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
)

// CreateProduct creates a new product from the admin form. Price and stock
// strings are coerced by the catalog; invalid input becomes 0.
func CreateProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.ProductDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if draft.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		product := cat.Create(draft)
		c.JSON(http.StatusCreated, product)
	}
}
