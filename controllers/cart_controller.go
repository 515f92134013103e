package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/pkg/resp"
	"github.com/shahmilc/LittleLemonAPI/services"
	"github.com/shahmilc/LittleLemonAPI/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	lines, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Svc.Add(c.Request.Context(), uid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusCreated, "item added to cart")
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusOK, "cart deleted")
}
