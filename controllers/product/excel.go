package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/tealeg/xlsx"
)

// ExportProductsToExcel streams the full catalog as an xlsx download.
func ExportProductsToExcel(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Price", "Stock", "Category",
			"ImageURL", "IsOffer", "Description",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range cat.List() {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(strconv.FormatBool(p.IsOffer))
			row.AddCell().SetValue(p.Description)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// ImportProductsFromExcel bulk-creates products from an uploaded xlsx file
// with the same column layout the export produces. The ID column is ignored;
// the catalog assigns fresh ids.
func ImportProductsFromExcel(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			if name == "" {
				skippedCount++
				continue
			}

			cat.Create(models.ProductDraft{
				Name:        name,
				Price:       get(2),
				Stock:       get(3),
				Category:    get(4),
				ImageURL:    get(5),
				IsOffer:     strings.EqualFold(get(6), "true"),
				Description: get(7),
			})
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"skipped": skippedCount,
		})
	}
}
