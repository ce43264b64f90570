package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/models"
)

// Dashboard summarises sales over paid and completed orders: today's and
// this month's revenue and order counts, plus the number of orders
// currently in progress.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		paidStatuses := []models.OrderStatus{models.OrderStatusPaid, models.OrderStatusCompleted}

		var todaySales, monthSales float64
		var todayOrders, monthOrders, activeOrders int64

		fail := func(err error) bool {
			if err == nil {
				return false
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
			return true
		}

		if fail(db.Model(&models.Order{}).
			Where("status IN ? AND created_at >= ?", paidStatuses, startOfDay).
			Select("COALESCE(SUM(total_amount), 0)").Scan(&todaySales).Error) {
			return
		}
		if fail(db.Model(&models.Order{}).
			Where("status IN ? AND created_at >= ?", paidStatuses, startOfDay).
			Count(&todayOrders).Error) {
			return
		}
		if fail(db.Model(&models.Order{}).
			Where("status IN ? AND created_at >= ?", paidStatuses, startOfMonth).
			Select("COALESCE(SUM(total_amount), 0)").Scan(&monthSales).Error) {
			return
		}
		if fail(db.Model(&models.Order{}).
			Where("status IN ? AND created_at >= ?", paidStatuses, startOfMonth).
			Count(&monthOrders).Error) {
			return
		}
		if fail(db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusPaid).
			Count(&activeOrders).Error) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"today_sales":   todaySales,
			"today_orders":  todayOrders,
			"month_sales":   monthSales,
			"month_orders":  monthOrders,
			"active_orders": activeOrders,
		})
	}
}
