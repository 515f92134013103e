package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shahmilc/LittleLemonAPI/entity"
)

// setupTestDB opens an isolated in-memory database per test. A single
// connection keeps sqlite transactions serialized the way a server-grade
// store would serialize row-locked writes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGroups(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		require.NoError(t, db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error)
	}
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) *entity.MenuItem {
	t.Helper()
	cat := &entity.Category{Title: "Mains"}
	require.NoError(t, db.FirstOrCreate(cat, entity.Category{Title: "Mains"}).Error)

	m := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
