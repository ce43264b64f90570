package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/cache"
	"github.com/socialcoffee/ordering-api/models"
)

const productUploadDir = "./uploads/products"
const productPublicPath = "/uploads/products"

// CreateProduct creates a product with localized names, an optional image
// upload and a set of option groups.
func CreateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		nameRus := c.PostForm("name_rus")
		basePriceStr := c.PostForm("base_price")
		categoryIDStr := c.PostForm("category_id")
		if nameRus == "" || basePriceStr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_rus, base_price, and category_id are required"})
			return
		}

		basePrice, err := strconv.ParseFloat(basePriceStr, 64)
		if err != nil || basePrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_price"})
			return
		}
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}

		// Option groups, comma separated ids
		var groups []models.OptionGroup
		if raw := c.PostForm("option_group_ids"); raw != "" {
			var parsedIDs []uint
			for _, tok := range strings.Split(raw, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				id64, parseErr := strconv.ParseUint(tok, 10, 64)
				if parseErr != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option_group_ids format"})
					return
				}
				parsedIDs = append(parsedIDs, uint(id64))
			}
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&groups).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch option groups"})
					return
				}
			}
		}

		imageURL, err := saveUploadedImage(c, "image", productUploadDir, productPublicPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			CategoryID:     uint(categoryID),
			NameRus:        nameRus,
			NameKaz:        c.PostForm("name_kaz"),
			DescriptionRus: c.PostForm("description_rus"),
			DescriptionKaz: c.PostForm("description_kaz"),
			BasePrice:      basePrice,
			ImageURL:       imageURL,
			Status:         models.ProductStatusActive,
			OptionGroups:   groups,
		}
		if status := c.PostForm("status"); status != "" {
			product.Status = models.ProductStatus(status)
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, product)
	}
}

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("OptionGroups.Options")
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("OptionGroups.Options").First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func UpdateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name_rus"); v != "" {
			product.NameRus = v
		}
		if v := c.PostForm("name_kaz"); v != "" {
			product.NameKaz = v
		}
		if v := c.PostForm("description_rus"); v != "" {
			product.DescriptionRus = v
		}
		if v := c.PostForm("description_kaz"); v != "" {
			product.DescriptionKaz = v
		}
		if v := c.PostForm("base_price"); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_price"})
				return
			}
			product.BasePrice = parsed
		}
		if v := c.PostForm("category_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, id64).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
			product.CategoryID = uint(id64)
		}
		if v := c.PostForm("status"); v != "" {
			switch models.ProductStatus(v) {
			case models.ProductStatusActive, models.ProductStatusOutOfStock, models.ProductStatusInactive:
				product.Status = models.ProductStatus(v)
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
				return
			}
		}

		if imageURL, err := saveUploadedImage(c, "image", productUploadDir, productPublicPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		} else if imageURL != "" {
			product.ImageURL = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		// Replace option-group links only when the field was sent.
		if raw, ok := c.GetPostForm("option_group_ids"); ok {
			var groups []models.OptionGroup
			if raw != "" {
				var parsedIDs []uint
				for _, tok := range strings.Split(raw, ",") {
					tok = strings.TrimSpace(tok)
					if tok == "" {
						continue
					}
					id64, parseErr := strconv.ParseUint(tok, 10, 64)
					if parseErr != nil {
						c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option_group_ids format"})
						return
					}
					parsedIDs = append(parsedIDs, uint(id64))
				}
				if len(parsedIDs) > 0 {
					if err := db.Where("id IN ?", parsedIDs).Find(&groups).Error; err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch option groups"})
						return
					}
				}
			}
			if err := db.Model(&product).Association("OptionGroups").Replace(groups); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update option groups"})
				return
			}
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Model(&product).Association("OptionGroups").Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlink option groups"})
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
