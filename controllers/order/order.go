package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/cart"
	"github.com/socialcoffee/ordering-api/controllers/kaspi"
	"github.com/socialcoffee/ordering-api/models"
)

// -------- Request Structs --------

type OrderItemOptionInput struct {
	OptionGroupName string  `json:"option_group_name" binding:"required"`
	OptionName      string  `json:"option_name" binding:"required"`
	OptionPrice     float64 `json:"option_price"`
}

type OrderItemInput struct {
	ProductID       uint                   `json:"product_id" binding:"required"`
	Quantity        int                    `json:"quantity" binding:"required,min=1"`
	SelectedOptions []OrderItemOptionInput `json:"selected_options"`
}

type CreateOrderRequest struct {
	Items             []OrderItemInput `json:"items" binding:"required,min=1"`
	DeliveryType      string           `json:"delivery_type"`
	DeliveryAddress   string           `json:"delivery_address"`
	DeliveryApartment string           `json:"delivery_apartment"`
	DeliveryEntrance  string           `json:"delivery_entrance"`
	DeliveryFloor     string           `json:"delivery_floor"`
	DeliveryLatitude  *float64         `json:"delivery_latitude"`
	DeliveryLongitude *float64         `json:"delivery_longitude"`
	PickupLocationID  uint             `json:"pickup_location_id"`
	ClientName        string           `json:"client_name"`
	ClientPhone       string           `json:"client_phone"`
	Comment           string           `json:"comment"`
}

// -------- Helpers --------

func mapDeliveryType(raw string) (models.DeliveryType, error) {
	switch strings.ToLower(raw) {
	case "", string(models.DeliveryTypePickup):
		return models.DeliveryTypePickup, nil
	case string(models.DeliveryTypeDelivery):
		return models.DeliveryTypeDelivery, nil
	case string(models.DeliveryTypeDineIn):
		return models.DeliveryTypeDineIn, nil
	default:
		return "", errors.New("invalid delivery type")
	}
}

func currentUserID(c *gin.Context) *uint {
	if val, exists := c.Get("user_id"); exists {
		if id, ok := val.(uint); ok {
			return &id
		}
	}
	return nil
}

// -------- Handlers --------

// CreateOrder places a new order: it recomputes every line price from the
// product base price plus option snapshots, persists the order in one
// transaction, and registers a Kaspi QR invoice. A payment-provider failure
// rolls the whole order back.
func CreateOrder(db *gorm.DB, payments *kaspi.Client, hub *Hub, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		deliveryType, err := mapDeliveryType(req.DeliveryType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Fulfillment validation happens before anything is written.
		if deliveryType == models.DeliveryTypeDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_address is required for delivery orders"})
			return
		}
		var pickupID *uint
		if deliveryType == models.DeliveryTypePickup {
			if req.PickupLocationID == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "pickup_location_id is required for pickup orders"})
				return
			}
			var location models.PickupLocation
			if err := db.First(&location, req.PickupLocationID).Error; err != nil || !location.IsActive {
				c.JSON(http.StatusBadRequest, gin.H{"error": "pickup location not found or inactive"})
				return
			}
			pickupID = &location.ID
		}

		userID := currentUserID(c)

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			var totalAmount float64
			var orderItems []models.OrderItem

			for _, item := range req.Items {
				var product models.Product
				if err := tx.First(&product, item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return errors.New("product not found")
					}
					return err
				}

				optionPrices := make([]float64, len(item.SelectedOptions))
				options := make([]models.OrderItemOption, len(item.SelectedOptions))
				for i, opt := range item.SelectedOptions {
					optionPrices[i] = opt.OptionPrice
					options[i] = models.OrderItemOption{
						OptionGroupName: opt.OptionGroupName,
						OptionName:      opt.OptionName,
						OptionPrice:     opt.OptionPrice,
					}
				}

				itemTotal := cart.LineTotal(product.BasePrice, optionPrices, item.Quantity)
				totalAmount += itemTotal

				productID := product.ID
				orderItems = append(orderItems, models.OrderItem{
					ProductID:       &productID,
					ProductName:     product.NameRus,
					BasePrice:       product.BasePrice,
					Quantity:        item.Quantity,
					TotalPrice:      itemTotal,
					SelectedOptions: options,
				})
			}

			// Bonus points accrue only for authenticated customers, 1% of the total.
			bonusEarned := 0
			if userID != nil {
				bonusEarned = int(math.Floor(totalAmount * 0.01))
			}

			order = models.Order{
				UserID:            userID,
				TotalAmount:       totalAmount,
				BonusEarned:       bonusEarned,
				Status:            models.OrderStatusPending,
				DeliveryType:      deliveryType,
				DeliveryAddress:   strings.TrimSpace(req.DeliveryAddress),
				DeliveryApartment: req.DeliveryApartment,
				DeliveryEntrance:  req.DeliveryEntrance,
				DeliveryFloor:     req.DeliveryFloor,
				DeliveryLatitude:  req.DeliveryLatitude,
				DeliveryLongitude: req.DeliveryLongitude,
				PickupLocationID:  pickupID,
				ClientName:        strings.TrimSpace(req.ClientName),
				ClientPhone:       req.ClientPhone,
				Comment:           strings.TrimSpace(req.Comment),
				Items:             orderItems,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			invoice, err := payments.CreateInvoice(c.Request.Context(), order.ID, totalAmount)
			if err != nil {
				log.Error("failed to create payment invoice", zap.Uint("order_id", order.ID), zap.Error(err))
				return errors.New("failed to create payment")
			}
			order.PaymentToken = invoice.Token
			order.PaymentURL = invoice.PaymentURL
			return tx.Model(&order).Updates(map[string]interface{}{
				"payment_token": invoice.Token,
				"payment_url":   invoice.PaymentURL,
			}).Error
		})
		if err != nil {
			status := http.StatusBadRequest
			if err.Error() == "failed to create payment" {
				status = http.StatusBadGateway
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		hub.BroadcastOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"order_id":     order.ID,
			"payment_url":  order.PaymentURL,
			"qr_token":     order.PaymentToken,
			"total_amount": order.TotalAmount,
		})
	}
}

// GetOrderStatus reports the payment state of an order. While the order is
// pending with a payment token it consults the provider and promotes
// pending→paid (crediting bonus points) or pending→cancelled first.
func GetOrderStatus(db *gorm.DB, payments *kaspi.Client, hub *Hub, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if order.Status == models.OrderStatusPending && order.PaymentToken != "" {
			switch payments.CheckStatus(c.Request.Context(), order.PaymentToken) {
			case "paid":
				// Status flip and bonus credit commit together or not at all.
				err := db.Transaction(func(tx *gorm.DB) error {
					if err := tx.Model(&order).Update("status", models.OrderStatusPaid).Error; err != nil {
						return err
					}
					if order.UserID != nil && order.BonusEarned > 0 {
						return tx.Model(&models.User{}).Where("id = ?", *order.UserID).
							Update("bonus_points", gorm.Expr("bonus_points + ?", order.BonusEarned)).Error
					}
					return nil
				})
				if err != nil {
					log.Error("failed to mark order paid", zap.Uint("order_id", order.ID), zap.Error(err))
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
					return
				}
				order.Status = models.OrderStatusPaid
				hub.BroadcastOrder(order)
			case "cancelled":
				order.Status = models.OrderStatusCancelled
				if err := db.Model(&order).Update("status", order.Status).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
					return
				}
				hub.BroadcastOrder(order)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id":    order.ID,
			"status":      order.Status,
			"payment_url": order.PaymentURL,
		})
	}
}

// GetOrder returns the full order with item and option snapshots; only the
// owner or an admin may read it.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items.SelectedOptions").First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		role, _ := c.Get("role")
		userID := currentUserID(c)
		isOwner := userID != nil && order.UserID != nil && *userID == *order.UserID
		if !isOwner && role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
