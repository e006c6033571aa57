package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/models"
)

// ItemRoutes sets up the routes for item-related operations
func ItemRoutes(router *gin.Engine) {
	itemRoutes := router.Group("/items")
	{
		itemRoutes.POST("/", CreateItem())
		itemRoutes.GET("/", GetAllItems())
		itemRoutes.GET("/:item_id", GetItem())
		itemRoutes.DELETE("/:item_id", DeleteItem())
	}
}

// CreateItem handles the creation of a new item
func CreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name   string `json:"name" binding:"required"`
			IsFood *bool  `json:"is_food"`
			Unit   string `json:"unit"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Items are food unless stated otherwise
		isFood := true
		if input.IsFood != nil {
			isFood = *input.IsFood
		}

		item := models.Item{Name: input.Name, IsFood: isFood, Unit: input.Unit}
		DB := db.GetDB()
		if result := DB.Create(&item); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// GetItem retrieves an item by ID
func GetItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")
		var item models.Item

		DB := db.GetDB()
		if result := DB.First(&item, itemID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// GetAllItems retrieves all items
func GetAllItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item

		DB := db.GetDB()
		if result := DB.Find(&items); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// DeleteItem handles the deletion of an item. Deletion is blocked while
// any stock still references the item.
func DeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")
		var item models.Item

		DB := db.GetDB()
		if result := DB.First(&item, itemID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item: " + result.Error.Error()})
			}
			return
		}

		var count int64
		if result := DB.Model(&models.Stock{}).Where("item_id = ?", item.ID).Count(&count); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check stocks: " + result.Error.Error()})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete item with linked stocks"})
			return
		}

		if result := DB.Delete(&item); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}
