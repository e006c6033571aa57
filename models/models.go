package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Email     string      `gorm:"type:varchar(150);unique;not null" json:"email"`
	CreatedAt time.Time   `json:"created_at"`
	Groups    []UserGroup `gorm:"foreignKey:UserID" json:"groups,omitempty"`
}

type Group struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserGroup links a user to a group with a role. One link per pair.
type UserGroup struct {
	UserID  uint   `gorm:"primaryKey" json:"user_id"`
	GroupID uint   `gorm:"primaryKey" json:"group_id"`
	Role    string `gorm:"type:varchar(50)" json:"role"`
	User    *User  `gorm:"foreignKey:UserID" json:"-"`
	Group   *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	IsFood    bool      `json:"is_food"`
	Unit      string    `gorm:"type:varchar(50)" json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// Stock is a lot of an item, optionally owned by a user or a group.
// Quantities are exact decimals so repeated small movements never drift.
type Stock struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ItemID            uint            `gorm:"not null;index" json:"item_id"`
	Item              *Item           `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	UserID            *uint           `gorm:"index" json:"user_id"`
	User              *User           `gorm:"foreignKey:UserID" json:"-"`
	GroupID           *uint           `gorm:"index" json:"group_id"`
	Group             *Group          `gorm:"foreignKey:GroupID" json:"-"`
	ExpirationDate    *time.Time      `gorm:"type:date" json:"expiration_date"`
	InitialQuantity   decimal.Decimal `gorm:"type:decimal(10,2)" json:"initial_quantity"`
	RemainingQuantity decimal.Decimal `gorm:"type:decimal(10,2)" json:"remaining_quantity"`
	LotCount          int             `gorm:"default:1" json:"lot_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// StockMovement is one signed entry in a stock's append-only history.
// Movements are never edited; they disappear only when their stock does.
type StockMovement struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	StockID        uint            `gorm:"not null;index" json:"stock_id"`
	Stock          *Stock          `gorm:"foreignKey:StockID" json:"-"`
	ChangeQuantity decimal.Decimal `gorm:"type:decimal(10,2)" json:"change_quantity"`
	Note           string          `gorm:"type:varchar(255)" json:"note"`
	CreatedAt      time.Time       `json:"created_at"`
}
