package productcontroller

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/models"
)

// GetProducts fetches the catalog and applies the storefront's
// browse filters: free-text search, category, vendor, price range and
// sorting. Disabled and unapproved listings are never shown.
func GetProducts(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		category := strings.ToLower(c.Query("category"))
		vendor := c.Query("vendor")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		var minPrice, maxPrice float64
		var err error
		if minPriceStr != "" {
			if minPrice, err = strconv.ParseFloat(minPriceStr, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if maxPrice, err = strconv.ParseFloat(maxPriceStr, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		catalog, err := mc.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := make([]models.Product, 0, len(catalog))
		for _, p := range catalog {
			if p.Disabled || !p.Approved {
				continue
			}
			if category != "" && strings.ToLower(p.Category) != category {
				continue
			}
			if vendor != "" && p.VendorEmail != vendor {
				continue
			}
			if minPriceStr != "" && p.Price < minPrice {
				continue
			}
			if maxPriceStr != "" && p.Price > maxPrice {
				continue
			}
			if search != "" && !matchesSearch(p, search) {
				continue
			}
			filtered = append(filtered, p)
		}

		switch sortBy {
		case "price":
			sort.SliceStable(filtered, func(i, j int) bool {
				if sortOrder == "desc" {
					return filtered[i].Price > filtered[j].Price
				}
				return filtered[i].Price < filtered[j].Price
			})
		case "rating":
			sort.SliceStable(filtered, func(i, j int) bool {
				if sortOrder == "desc" {
					return filtered[i].Rating > filtered[j].Rating
				}
				return filtered[i].Rating < filtered[j].Rating
			})
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": filtered})
	}
}

func matchesSearch(p models.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.ProductName), search) ||
		strings.Contains(strings.ToLower(p.BrandName), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

// GetProductByID returns a single product.
func GetProductByID(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, err := mc.ProductByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}

// GetCategories derives the list of categories present in the catalog.
func GetCategories(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := mc.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		seen := make(map[string]bool)
		var categories []string
		for _, p := range catalog {
			category := strings.ToLower(p.Category)
			if category == "" || seen[category] {
				continue
			}
			seen[category] = true
			categories = append(categories, category)
		}
		sort.Strings(categories)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
	}
}

// GetBanners returns the storefront's promotional banners.
func GetBanners(mc *marketplace.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := mc.Banners(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to get banners"})
			return
		}
		active := make([]models.Banner, 0, len(banners))
		for _, b := range banners {
			if b.Active {
				active = append(active, b)
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": active})
	}
}
