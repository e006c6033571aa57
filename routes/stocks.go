package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/ledger"
	"github.com/adrienb3106/fridgey-backend/models"
)

// StockRoutes sets up the routes for stock-related operations. All
// mutations go through the ledger so every change leaves a movement.
func StockRoutes(router *gin.Engine) {
	stockRoutes := router.Group("/stocks")
	{
		stockRoutes.POST("/", CreateStock())
		stockRoutes.GET("/", GetAllStocks())
		stockRoutes.GET("/:stock_id", GetStock())
		stockRoutes.PUT("/:stock_id", UpdateStockQuantity())
		stockRoutes.DELETE("/:stock_id", DeleteStock())
	}
}

// CreateStock handles the creation of a new stock lot
func CreateStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ItemID          uint            `json:"item_id" binding:"required"`
			UserID          *uint           `json:"user_id"`
			GroupID         *uint           `json:"group_id"`
			ExpirationDate  *time.Time      `json:"expiration_date"`
			InitialQuantity decimal.Decimal `json:"initial_quantity"`
			LotCount        int             `json:"lot_count"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.InitialQuantity.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "initial_quantity must not be negative"})
			return
		}
		if input.LotCount <= 0 {
			input.LotCount = 1
		}

		DB := db.GetDB()

		var item models.Item
		if result := DB.First(&item, input.ItemID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item: " + result.Error.Error()})
			}
			return
		}

		stock := models.Stock{
			ItemID:          input.ItemID,
			UserID:          input.UserID,
			GroupID:         input.GroupID,
			ExpirationDate:  input.ExpirationDate,
			InitialQuantity: input.InitialQuantity,
			LotCount:        input.LotCount,
		}
		if err := ledger.CreateStock(DB, &stock); err != nil {
			if err == gorm.ErrForeignKeyViolated {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner reference: " + err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock: " + err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"stock": stock})
	}
}

// GetStock retrieves a stock by ID
func GetStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		stockID := c.Param("stock_id")
		var stock models.Stock

		DB := db.GetDB()
		if result := DB.Preload("Item").First(&stock, stockID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stock: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"stock": stock})
	}
}

// GetAllStocks retrieves all stocks
func GetAllStocks() gin.HandlerFunc {
	return func(c *gin.Context) {
		var stocks []models.Stock

		DB := db.GetDB()
		if result := DB.Preload("Item").Find(&stocks); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stocks: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"stocks": stocks})
	}
}

// UpdateStockQuantity applies the signed ?change= amount to a stock's
// remaining quantity through the ledger
func UpdateStockQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		stockID, err := strconv.ParseUint(c.Param("stock_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock ID format"})
			return
		}

		changeStr := c.Query("change")
		if changeStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "change query parameter is required"})
			return
		}
		change, err := decimal.NewFromString(changeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid change value: " + changeStr})
			return
		}

		stock, err := ledger.AdjustQuantity(db.GetDB(), uint(stockID), change)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"stock": stock})
		case err == gorm.ErrRecordNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		case err == ledger.ErrInsufficientQuantity:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient remaining quantity"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock: " + err.Error()})
		}
	}
}

// DeleteStock handles the deletion of a stock and its movement history
func DeleteStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		stockID, err := strconv.ParseUint(c.Param("stock_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock ID format"})
			return
		}

		if err := ledger.DeleteStock(db.GetDB(), uint(stockID)); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock: " + err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Stock deleted successfully"})
	}
}
