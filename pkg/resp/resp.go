package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Detail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"detail": msg})
}

// Error renders any service error with its taxonomy status code.
func Error(c *gin.Context, err error) {
	code, msg := apperr.StatusOf(err)
	c.JSON(code, gin.H{"detail": msg})
}
