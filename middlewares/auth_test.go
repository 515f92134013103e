package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/repository"
	"github.com/shahmilc/LittleLemonAPI/utils"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) (*gorm.DB, *repository.GroupRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Group{}))

	for _, n := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		require.NoError(t, db.FirstOrCreate(&entity.Group{}, entity.Group{Name: n}).Error)
	}
	return db, repository.NewGroupRepository(db)
}

func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(u.ID, u.Username, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	_, repo := setupAuthTest(t)

	r := gin.New()
	r.GET("/orders", AuthMiddleware(repo, testSecret), func(c *gin.Context) { c.Status(200) })

	w := doRequest(r, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeliveryCrewCannotDeleteOrders(t *testing.T) {
	db, repo := setupAuthTest(t)

	crew := &entity.User{Username: "carol", Password: "x"}
	require.NoError(t, db.Create(crew).Error)
	var g entity.Group
	require.NoError(t, db.Where("name = ?", entity.GroupDeliveryCrew).First(&g).Error)
	require.NoError(t, db.Model(&g).Association("Users").Append(crew))

	r := gin.New()
	r.DELETE("/orders/:id", AuthMiddleware(repo, testSecret, RoleManager), func(c *gin.Context) { c.Status(200) })
	r.PATCH("/orders/:id", AuthMiddleware(repo, testSecret, RoleManager, RoleDeliveryCrew), func(c *gin.Context) { c.Status(200) })

	token := tokenFor(t, crew)
	w := doRequest(r, http.MethodDelete, "/orders/1", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodPatch, "/orders/1", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

// Membership changes take effect on the next request with the same token.
func TestRolesResolvedPerRequest(t *testing.T) {
	db, repo := setupAuthTest(t)

	u := &entity.User{Username: "alice", Password: "x"}
	require.NoError(t, db.Create(u).Error)

	r := gin.New()
	r.POST("/menu-items", AuthMiddleware(repo, testSecret, RoleManager, RoleSuperuser), func(c *gin.Context) { c.Status(200) })

	token := tokenFor(t, u)
	w := doRequest(r, http.MethodPost, "/menu-items", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var g entity.Group
	require.NoError(t, db.Where("name = ?", entity.GroupManager).First(&g).Error)
	require.NoError(t, db.Model(&g).Association("Users").Append(u))

	w = doRequest(r, http.MethodPost, "/menu-items", token)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Model(&g).Association("Users").Delete(u))

	w = doRequest(r, http.MethodPost, "/menu-items", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
