package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string          `gorm:"not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Featured bool            `json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload for detail only

	OrderItems []OrderItem `json:"-"`
}
