package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one pending line of a user's cart. UnitPrice is snapshotted
// from the menu item at add time; Price is always unit_price * quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}
