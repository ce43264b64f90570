package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/cache"
	"github.com/socialcoffee/ordering-api/models"
)

// -------- Request Structs --------

type createOptionGroupRequest struct {
	NameRus    string `json:"name_rus" binding:"required"`
	NameKaz    string `json:"name_kaz"`
	IsRequired bool   `json:"is_required"`
	IsMultiple bool   `json:"is_multiple"`
}

type createOptionRequest struct {
	GroupID uint    `json:"group_id" binding:"required"`
	NameRus string  `json:"name_rus" binding:"required"`
	NameKaz string  `json:"name_kaz"`
	Price   float64 `json:"price"`
}

// -------- Handlers --------

func GetOptionGroups(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var groups []models.OptionGroup
		if err := db.Preload("Options").Order("id ASC").Find(&groups).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch option groups"})
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

func CreateOptionGroup(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOptionGroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		group := models.OptionGroup{
			NameRus:    req.NameRus,
			NameKaz:    req.NameKaz,
			IsRequired: req.IsRequired,
			IsMultiple: req.IsMultiple,
		}
		if err := db.Create(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create option group"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, group)
	}
}

func DeleteOptionGroup(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var group models.OptionGroup
		if err := db.First(&group, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option group not found"})
			return
		}

		if err := db.Where("group_id = ?", group.ID).Delete(&models.Option{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete options"})
			return
		}
		if err := db.Delete(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete option group"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Option group deleted"})
	}
}

func CreateOption(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var group models.OptionGroup
		if err := db.First(&group, req.GroupID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Option group not found"})
			return
		}

		option := models.Option{
			GroupID:     req.GroupID,
			NameRus:     req.NameRus,
			NameKaz:     req.NameKaz,
			Price:       req.Price,
			IsAvailable: true,
		}
		if err := db.Create(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create option"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, option)
	}
}

func UpdateOption(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var option models.Option
		if err := db.First(&option, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
			return
		}

		var req struct {
			NameRus     *string  `json:"name_rus"`
			NameKaz     *string  `json:"name_kaz"`
			Price       *float64 `json:"price"`
			IsAvailable *bool    `json:"is_available"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.NameRus != nil {
			option.NameRus = *req.NameRus
		}
		if req.NameKaz != nil {
			option.NameKaz = *req.NameKaz
		}
		if req.Price != nil {
			option.Price = *req.Price
		}
		if req.IsAvailable != nil {
			option.IsAvailable = *req.IsAvailable
		}

		if err := db.Save(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update option"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, option)
	}
}

func DeleteOption(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var option models.Option
		if err := db.First(&option, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
			return
		}

		if err := db.Delete(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete option"})
			return
		}

		store.InvalidateMenu(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Option deleted"})
	}
}
