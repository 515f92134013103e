package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/resp"
	"github.com/shahmilc/LittleLemonAPI/services"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Svc.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cat, err := ctl.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

type categoryReq struct {
	Title string `json:"title" binding:"required"`
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	cat := entity.Category{Title: req.Title}
	if err := ctl.Svc.Create(c.Request.Context(), &cat); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := ctl.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	cat.Title = req.Title
	if err := ctl.Svc.Update(c.Request.Context(), cat); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusOK, "category deleted")
}
