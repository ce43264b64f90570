package productControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/cache"
	"github.com/socialcoffee/ordering-api/models"
)

const categoryUploadDir = "./uploads/categories"
const categoryPublicPath = "/uploads/categories"

func CreateCategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameRus := c.PostForm("name_rus")
		nameKaz := c.PostForm("name_kaz")

		if nameRus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_rus is required"})
			return
		}

		sortOrder := 0
		if raw := c.PostForm("order"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			sortOrder = parsed
		}

		imageURL, err := saveUploadedImage(c, "image", categoryUploadDir, categoryPublicPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		category := models.Category{
			NameRus:   nameRus,
			NameKaz:   nameKaz,
			SortOrder: sortOrder,
			ImageURL:  imageURL,
			IsActive:  true,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, category)
	}
}

func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if v := c.PostForm("name_rus"); v != "" {
			category.NameRus = v
		}
		if v := c.PostForm("name_kaz"); v != "" {
			category.NameKaz = v
		}
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			category.SortOrder = parsed
		}
		if v := c.PostForm("is_active"); v != "" {
			category.IsActive = v == "true" || v == "1"
		}

		if imageURL, err := saveUploadedImage(c, "image", categoryUploadDir, categoryPublicPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		} else if imageURL != "" {
			category.ImageURL = imageURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var productCount int64
		db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount)
		if productCount > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category still has products"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// saveUploadedImage stores an optional multipart file under dir and returns
// its public URL, or "" when no file was sent.
func saveUploadedImage(c *gin.Context, field, dir, publicPath string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder")
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	savePath := filepath.Join(dir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image")
	}

	return fmt.Sprintf("%s/%s", publicPath, filename), nil
}
