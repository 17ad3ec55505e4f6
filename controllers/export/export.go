package exportControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/recommend"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProductsToExcel streams the current catalog as a spreadsheet.
func ExportProductsToExcel(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := mc.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "ProductName", "BrandName", "Category", "Price",
			"VendorEmail", "Rating", "Approved", "Disabled",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.ProductName)
			row.AddCell().SetValue(p.BrandName)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.VendorEmail)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Approved)
			row.AddCell().SetValue(p.Disabled)
		}

		writeExcel(c, file, "products.xlsx")
	}
}

// ExportOrdersToExcel streams the caller's order history as a
// spreadsheet, one row per line item with its price bucket.
func ExportOrdersToExcel(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		token := c.GetString("auth_token")

		orders, err := mc.UserOrders(c.Request.Context(), token, email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Status", "CreatedAt", "ProductID", "ProductName",
			"Category", "Price", "Quantity", "LineTotal", "PriceBucket", "Vendor",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, item := range o.Products {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.CreatedAt)
				row.AddCell().SetValue(item.ProductID)
				row.AddCell().SetValue(item.ProductName)
				row.AddCell().SetValue(strings.ToLower(item.Category))
				row.AddCell().SetValue(item.Price)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.LineTotal())
				row.AddCell().SetValue(recommend.PriceBucket(item.LineTotal()))
				row.AddCell().SetValue(item.Vendor)
			}
		}

		writeExcel(c, file, "orders.xlsx")
	}
}

func writeExcel(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", excelContentType)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
