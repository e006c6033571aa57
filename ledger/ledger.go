// Package ledger owns the stock quantity bookkeeping: every change to a
// stock's remaining quantity goes through here and leaves a movement row
// behind. The remaining quantity never goes below zero.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/models"
)

// ErrInsufficientQuantity is returned when an adjustment would drive a
// stock's remaining quantity below zero.
var ErrInsufficientQuantity = errors.New("insufficient remaining quantity")

const (
	initialMovementNote = "Initial stock created"
	updateMovementNote  = "Quantity updated"
)

// CreateStock persists a new stock lot and its opening movement as one
// transaction. RemainingQuantity is always initialized from
// InitialQuantity, whatever the caller set.
func CreateStock(db *gorm.DB, stock *models.Stock) error {
	stock.RemainingQuantity = stock.InitialQuantity
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stock).Error; err != nil {
			return err
		}
		movement := models.StockMovement{
			StockID:        stock.ID,
			ChangeQuantity: stock.InitialQuantity,
			Note:           initialMovementNote,
		}
		return tx.Create(&movement).Error
	})
}

// AdjustQuantity applies a signed change to a stock's remaining quantity
// and records the movement. A change that would leave the quantity
// negative fails with ErrInsufficientQuantity and writes nothing.
// Returns gorm.ErrRecordNotFound if the stock does not exist.
func AdjustQuantity(db *gorm.DB, stockID uint, change decimal.Decimal) (*models.Stock, error) {
	var stock models.Stock
	if err := db.First(&stock, stockID).Error; err != nil {
		return nil, err
	}

	newRemaining := stock.RemainingQuantity.Add(change)
	if newRemaining.IsNegative() {
		return nil, ErrInsufficientQuantity
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&stock).Update("remaining_quantity", newRemaining).Error; err != nil {
			return err
		}
		movement := models.StockMovement{
			StockID:        stock.ID,
			ChangeQuantity: change,
			Note:           updateMovementNote,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}
	stock.RemainingQuantity = newRemaining
	return &stock, nil
}

// DeleteStock removes a stock lot together with its movement history.
// Movements have no independent lifecycle, so the cascade is an explicit
// delete inside the same transaction.
func DeleteStock(db *gorm.DB, stockID uint) error {
	var stock models.Stock
	if err := db.First(&stock, stockID).Error; err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stock_id = ?", stock.ID).Delete(&models.StockMovement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&stock).Error
	})
}

// ListMovements returns a stock's movements in creation order, or
// gorm.ErrRecordNotFound if the stock does not exist.
func ListMovements(db *gorm.DB, stockID uint) ([]models.StockMovement, error) {
	var stock models.Stock
	if err := db.First(&stock, stockID).Error; err != nil {
		return nil, err
	}
	var movements []models.StockMovement
	if err := db.Where("stock_id = ?", stock.ID).Order("id").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
