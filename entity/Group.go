package entity

import (
	"gorm.io/gorm"
)

// Group names are provisioned at deployment (configs.SeedGroups); a missing
// group at request time is a configuration fault, not a 404.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
)

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}

// RoleSet is resolved fresh on every request from group membership, never
// cached across requests, so admin changes take effect immediately.
type RoleSet struct {
	Manager      bool
	DeliveryCrew bool
	Superuser    bool
}
