package adminControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/models"
)

func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items.SelectedOptions").Order("created_at DESC")
		if from := c.Query("from"); from != "" {
			query = query.Where("created_at >= ?", from)
		}
		if to := c.Query("to"); to != "" {
			query = query.Where("created_at <= ?", to)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Status", "DeliveryType", "TotalAmount", "BonusEarned",
			"ClientName", "ClientPhone", "DeliveryAddress", "Comment",
			"Items", "CreatedAt", "CompletedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.DeliveryType))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.BonusEarned)
			row.AddCell().SetValue(o.ClientName)
			row.AddCell().SetValue(o.ClientPhone)
			row.AddCell().SetValue(o.DeliveryAddress)
			row.AddCell().SetValue(o.Comment)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d = %.0f", item.ProductName, item.Quantity, item.TotalPrice))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			if o.CompletedAt != nil {
				row.AddCell().SetValue(o.CompletedAt.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
