package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Title string `gorm:"not null" json:"title"`

	MenuItems []MenuItem `json:"-"`
}
