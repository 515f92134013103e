package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/shahmilc/LittleLemonAPI/entity"
)

// SeedAdmin creates the initial superuser once.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username:    username,
		Password:    string(hash),
		IsSuperuser: true,
	}
	return db.Create(&admin).Error
}

// SeedGroups provisions the role groups. Roles are deployment configuration;
// request handling assumes these rows exist.
func SeedGroups() error {
	db := DB()

	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}

	log.Println("role groups seeded")
	return nil
}
