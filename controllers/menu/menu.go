package menuControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/socialcoffee/ordering-api/cache"
	"github.com/socialcoffee/ordering-api/models"
)

// -------- Response Structs --------

type MenuOption struct {
	ID      uint    `json:"id"`
	GroupID uint    `json:"group_id"`
	NameRus string  `json:"name_rus"`
	NameKaz string  `json:"name_kaz"`
	Price   float64 `json:"price"`
}

type MenuOptionGroup struct {
	ID         uint         `json:"id"`
	NameRus    string       `json:"name_rus"`
	NameKaz    string       `json:"name_kaz"`
	IsRequired bool         `json:"is_required"`
	IsMultiple bool         `json:"is_multiple"`
	Options    []MenuOption `json:"options"`
}

type MenuProduct struct {
	ID             uint                 `json:"id"`
	CategoryID     uint                 `json:"category_id"`
	NameRus        string               `json:"name_rus"`
	NameKaz        string               `json:"name_kaz"`
	DescriptionRus string               `json:"description_rus"`
	DescriptionKaz string               `json:"description_kaz"`
	BasePrice      float64              `json:"base_price"`
	ImageURL       string               `json:"image_url"`
	Status         models.ProductStatus `json:"status"`
	OptionGroups   []MenuOptionGroup    `json:"option_groups"`
}

type MenuCategory struct {
	ID       uint          `json:"id"`
	NameRus  string        `json:"name_rus"`
	NameKaz  string        `json:"name_kaz"`
	Order    int           `json:"order"`
	Products []MenuProduct `json:"products"`
}

type MenuResponse struct {
	Categories []MenuCategory `json:"categories"`
}

// GetMenu returns the full storefront menu: active categories in display
// order, their active products, and option groups filtered to available
// options. The assembled response is cached in Redis; cache failures fall
// through to the database.
func GetMenu(db *gorm.DB, store *cache.Cache, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cached, ok := store.Get(ctx, cache.MenuKey); ok {
			var menu MenuResponse
			if err := json.Unmarshal([]byte(cached), &menu); err == nil {
				c.JSON(http.StatusOK, menu)
				return
			}
			log.Warn("discarding corrupt cached menu")
		}

		var categories []models.Category
		if err := db.Where("is_active = ?", true).Order("sort_order").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		menu := MenuResponse{Categories: make([]MenuCategory, 0, len(categories))}
		for _, category := range categories {
			var products []models.Product
			if err := db.
				Preload("OptionGroups.Options").
				Where("category_id = ? AND status = ?", category.ID, models.ProductStatusActive).
				Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
				return
			}

			menuCategory := MenuCategory{
				ID:       category.ID,
				NameRus:  category.NameRus,
				NameKaz:  category.NameKaz,
				Order:    category.SortOrder,
				Products: make([]MenuProduct, 0, len(products)),
			}
			for _, product := range products {
				menuCategory.Products = append(menuCategory.Products, buildMenuProduct(product))
			}
			menu.Categories = append(menu.Categories, menuCategory)
		}

		if data, err := json.Marshal(menu); err == nil {
			store.Set(ctx, cache.MenuKey, string(data), cache.MenuTTL)
		}

		c.JSON(http.StatusOK, menu)
	}
}

func buildMenuProduct(product models.Product) MenuProduct {
	groups := make([]MenuOptionGroup, 0, len(product.OptionGroups))
	for _, group := range product.OptionGroups {
		options := make([]MenuOption, 0, len(group.Options))
		for _, option := range group.Options {
			// Unavailable options must never be selectable in the storefront.
			if !option.IsAvailable {
				continue
			}
			options = append(options, MenuOption{
				ID:      option.ID,
				GroupID: option.GroupID,
				NameRus: option.NameRus,
				NameKaz: option.NameKaz,
				Price:   option.Price,
			})
		}
		groups = append(groups, MenuOptionGroup{
			ID:         group.ID,
			NameRus:    group.NameRus,
			NameKaz:    group.NameKaz,
			IsRequired: group.IsRequired,
			IsMultiple: group.IsMultiple,
			Options:    options,
		})
	}

	return MenuProduct{
		ID:             product.ID,
		CategoryID:     product.CategoryID,
		NameRus:        product.NameRus,
		NameKaz:        product.NameKaz,
		DescriptionRus: product.DescriptionRus,
		DescriptionKaz: product.DescriptionKaz,
		BasePrice:      product.BasePrice,
		ImageURL:       product.ImageURL,
		Status:         product.Status,
		OptionGroups:   groups,
	}
}
