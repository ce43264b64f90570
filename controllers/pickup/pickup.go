package pickupControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/models"
)

// -------- Request Structs --------

type pickupRequest struct {
	Title        string  `json:"title" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	WorkingHours string  `json:"working_hours"`
	Phone        string  `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DisplayOrder int     `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// -------- Handlers --------

// GetPickupLocations lists active pickup points ordered by display_order,
// ties broken by id ascending. Admins can request inactive ones via ?all=true.
func GetPickupLocations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("display_order ASC, id ASC")
		if c.Query("all") != "true" {
			query = query.Where("is_active = ?", true)
		}

		var locations []models.PickupLocation
		if err := query.Find(&locations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pickup locations"})
			return
		}
		c.JSON(http.StatusOK, locations)
	}
}

func CreatePickupLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req pickupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		location := models.PickupLocation{
			Title:        req.Title,
			Address:      req.Address,
			WorkingHours: req.WorkingHours,
			Phone:        req.Phone,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			DisplayOrder: req.DisplayOrder,
			IsActive:     true,
		}
		if req.IsActive != nil {
			location.IsActive = *req.IsActive
		}

		if err := db.Create(&location).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pickup location"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

func UpdatePickupLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var location models.PickupLocation
		if err := db.First(&location, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup location not found"})
			return
		}

		var req pickupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		location.Title = req.Title
		location.Address = req.Address
		location.WorkingHours = req.WorkingHours
		location.Phone = req.Phone
		location.Latitude = req.Latitude
		location.Longitude = req.Longitude
		location.DisplayOrder = req.DisplayOrder
		if req.IsActive != nil {
			location.IsActive = *req.IsActive
		}

		if err := db.Save(&location).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pickup location"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

func DeletePickupLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var location models.PickupLocation
		if err := db.First(&location, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup location not found"})
			return
		}
		if err := db.Delete(&location).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pickup location"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pickup location deleted"})
	}
}
