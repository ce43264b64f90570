package adminControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/models"
)

// ActiveOrders lists paid orders awaiting preparation, oldest first.
func ActiveOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items.SelectedOptions").Preload("PickupLocation").
			Where("status = ?", models.OrderStatusPaid).
			Order("created_at ASC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch active orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ClosedOrders lists completed and cancelled orders, newest first.
// The limit query parameter caps the result, defaulting to 50.
func ClosedOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 50
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		var orders []models.Order
		if err := db.Preload("Items.SelectedOptions").Preload("PickupLocation").
			Where("status IN ?", []models.OrderStatus{models.OrderStatusCompleted, models.OrderStatusCancelled}).
			Order("created_at DESC").
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch closed orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CompleteOrder marks a paid order as completed and stamps CompletedAt.
func CompleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.Status != models.OrderStatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only paid orders can be completed"})
			return
		}

		now := time.Now()
		if err := db.Model(&order).Updates(map[string]interface{}{
			"status":       models.OrderStatusCompleted,
			"completed_at": now,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		order.Status = models.OrderStatusCompleted
		order.CompletedAt = &now
		c.JSON(http.StatusOK, order)
	}
}

// CancelOrder cancels a pending or paid order.
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.Status == models.OrderStatusCompleted || order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already closed"})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		order.Status = models.OrderStatusCancelled
		c.JSON(http.StatusOK, order)
	}
}
