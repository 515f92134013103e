package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/pkg/resp"
	"github.com/shahmilc/LittleLemonAPI/services"
	"github.com/shahmilc/LittleLemonAPI/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := ac.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "id": user.ID, "username": user.Username})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := ac.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}
