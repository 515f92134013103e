package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/resp"
	"github.com/shahmilc/LittleLemonAPI/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

type menuItemReq struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

// POST /menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	item := entity.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := ctl.Svc.Create(c.Request.Context(), &item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := ctl.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.CategoryID = req.CategoryID

	if err := ctl.Svc.Update(c.Request.Context(), item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

type menuItemPatchReq struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *uint            `json:"categoryId"`
}

// PATCH /menu-items/:id
func (ctl *MenuController) Patch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req menuItemPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if len(fields) == 0 {
		resp.Detail(c, http.StatusBadRequest, "no fields to update")
		return
	}

	item, err := ctl.Svc.UpdateFields(c.Request.Context(), uint(id), fields)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusOK, "menu item deleted")
}
