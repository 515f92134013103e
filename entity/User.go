package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`

	// superusers administer categories and the Manager group
	IsSuperuser bool `json:"-"`

	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
