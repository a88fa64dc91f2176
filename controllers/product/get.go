package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naxo-910/elsabor-api/catalog"
)

// GetProducts returns the product list, optionally filtered.
// Query params: search (name/description substring), category (case-insensitive
// exact match), offers=true.
func GetProducts(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, cat.ListByCategory(category))
			return
		}
		if c.Query("offers") == "true" {
			c.JSON(http.StatusOK, cat.ListOffers())
			return
		}
		if search := c.Query("search"); search != "" {
			c.JSON(http.StatusOK, cat.Search(search))
			return
		}
		c.JSON(http.StatusOK, cat.List())
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := cat.FindByID(id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories returns the distinct categories in order of first occurrence.
func GetCategories(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Categories())
	}
}
