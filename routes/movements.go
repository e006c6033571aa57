package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/ledger"
	"github.com/adrienb3106/fridgey-backend/models"
)

// MovementRoutes sets up the read-only routes for stock movements.
// Movements are only ever written by the ledger.
func MovementRoutes(router *gin.Engine) {
	movementRoutes := router.Group("/movements")
	{
		movementRoutes.GET("/", GetAllMovements())
		movementRoutes.GET("/stock/:stock_id", GetMovementsForStock())
		movementRoutes.GET("/:movement_id", GetMovement())
	}
}

// GetAllMovements retrieves all movements
func GetAllMovements() gin.HandlerFunc {
	return func(c *gin.Context) {
		var movements []models.StockMovement

		DB := db.GetDB()
		if result := DB.Order("id").Find(&movements); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movements: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"movements": movements})
	}
}

// GetMovementsForStock retrieves the movements of one stock
func GetMovementsForStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		stockID, err := strconv.ParseUint(c.Param("stock_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock ID format"})
			return
		}

		movements, err := ledger.ListMovements(db.GetDB(), uint(stockID))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movements: " + err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"movements": movements})
	}
}

// GetMovement retrieves a movement by ID
func GetMovement() gin.HandlerFunc {
	return func(c *gin.Context) {
		movementID := c.Param("movement_id")
		var movement models.StockMovement

		DB := db.GetDB()
		if result := DB.First(&movement, movementID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movement: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"movement": movement})
	}
}
