package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload when the customer name is needed

	// assigned only through the Manager full-replace endpoint
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status OrderStatus     `gorm:"type:varchar(16);not null;default:PENDING" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Date   time.Time       `json:"date"` // set once at checkout

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
