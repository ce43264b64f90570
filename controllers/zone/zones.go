package zoneControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/models"
)

// -------- Request Structs --------

type zoneRequest struct {
	Name          string             `json:"name" binding:"required"`
	Coordinates   models.Coordinates `json:"coordinates" binding:"required"`
	Color         string             `json:"color"`
	DeliveryFee   float64            `json:"delivery_fee"`
	MinOrder      float64            `json:"min_order"`
	EstimatedTime string             `json:"estimated_time"`
	IsActive      *bool              `json:"is_active"`
}

// -------- Handlers --------

// GetZones returns the active delivery polygons the storefront draws on the
// map. Admins receive inactive zones too via ?all=true.
func GetZones(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("id ASC")
		if c.Query("all") != "true" {
			query = query.Where("is_active = ?", true)
		}

		var zones []models.DeliveryZone
		if err := query.Find(&zones).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery zones"})
			return
		}
		c.JSON(http.StatusOK, zones)
	}
}

func CreateZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req zoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Coordinates) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A zone polygon needs at least 3 points"})
			return
		}

		zone := models.DeliveryZone{
			Name:          req.Name,
			Coordinates:   req.Coordinates,
			Color:         req.Color,
			DeliveryFee:   req.DeliveryFee,
			MinOrder:      req.MinOrder,
			EstimatedTime: req.EstimatedTime,
			IsActive:      true,
		}
		if req.IsActive != nil {
			zone.IsActive = *req.IsActive
		}

		if err := db.Create(&zone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery zone"})
			return
		}
		c.JSON(http.StatusOK, zone)
	}
}

func UpdateZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zone models.DeliveryZone
		if err := db.First(&zone, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery zone not found"})
			return
		}

		var req zoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Coordinates) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A zone polygon needs at least 3 points"})
			return
		}

		zone.Name = req.Name
		zone.Coordinates = req.Coordinates
		zone.Color = req.Color
		zone.DeliveryFee = req.DeliveryFee
		zone.MinOrder = req.MinOrder
		zone.EstimatedTime = req.EstimatedTime
		if req.IsActive != nil {
			zone.IsActive = *req.IsActive
		}

		if err := db.Save(&zone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery zone"})
			return
		}
		c.JSON(http.StatusOK, zone)
	}
}

func DeleteZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zone models.DeliveryZone
		if err := db.First(&zone, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery zone not found"})
			return
		}
		if err := db.Delete(&zone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery zone"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery zone deleted"})
	}
}
