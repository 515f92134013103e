package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/resp"
	"github.com/shahmilc/LittleLemonAPI/services"
	"github.com/shahmilc/LittleLemonAPI/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders — list filtered by the caller's visibility, never an error
// for out-of-scope orders.
func (oc *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	roles := utils.CurrentRoles(c)

	orders, err := oc.Svc.ListVisible(c.Request.Context(), uid, roles)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders — checkout: the caller's cart becomes an order.
func (oc *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := oc.Svc.Checkout(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	roles := utils.CurrentRoles(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Svc.GetVisible(c.Request.Context(), uid, roles, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type patchOrderReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id — Manager or delivery crew; only status is applied,
// any other field in the body is ignored.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req patchOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type putOrderReq struct {
	Status         entity.OrderStatus `json:"status" binding:"required"`
	DeliveryCrewID *uint              `json:"deliveryCrewId"`
}

// PUT /orders/:id — Manager only full replace; the single path that assigns
// delivery crew.
func (oc *OrderController) Replace(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req putOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := oc.Svc.Replace(c.Request.Context(), uint(id), req.Status, req.DeliveryCrewID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id — Manager only.
func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusOK, "order deleted")
}
