package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/resp"
	"github.com/shahmilc/LittleLemonAPI/services"
)

type GroupController struct{ Svc *services.GroupService }

func NewGroupController(s *services.GroupService) *GroupController {
	return &GroupController{Svc: s}
}

type addMemberReq struct {
	Username string `json:"username" binding:"required"`
}

func (gc *GroupController) list(c *gin.Context, groupName string) {
	members, err := gc.Svc.ListMembers(c.Request.Context(), groupName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, members)
}

func (gc *GroupController) add(c *gin.Context, groupName string) {
	var req addMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := gc.Svc.AddMember(c.Request.Context(), groupName, req.Username); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusCreated, "user added")
}

func (gc *GroupController) remove(c *gin.Context, groupName string) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := gc.Svc.RemoveMember(c.Request.Context(), groupName, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Detail(c, http.StatusOK, "user removed")
}

// GET /groups/manager/users
func (gc *GroupController) ListManagers(c *gin.Context) { gc.list(c, entity.GroupManager) }

// POST /groups/manager/users
func (gc *GroupController) AddManager(c *gin.Context) { gc.add(c, entity.GroupManager) }

// DELETE /groups/manager/users/:id
func (gc *GroupController) RemoveManager(c *gin.Context) { gc.remove(c, entity.GroupManager) }

// GET /groups/delivery-crew/users
func (gc *GroupController) ListDeliveryCrew(c *gin.Context) { gc.list(c, entity.GroupDeliveryCrew) }

// POST /groups/delivery-crew/users
func (gc *GroupController) AddDeliveryCrew(c *gin.Context) { gc.add(c, entity.GroupDeliveryCrew) }

// DELETE /groups/delivery-crew/users/:id
func (gc *GroupController) RemoveDeliveryCrew(c *gin.Context) { gc.remove(c, entity.GroupDeliveryCrew) }
