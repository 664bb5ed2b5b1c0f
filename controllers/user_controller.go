package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-backend/dto"
	"booking-backend/services"
	"booking-backend/utils"
)

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// CreateUser (POST /users)
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.MsgInvalidBody)
		return
	}

	user, err := ctrl.UserSvc.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONCreated(c, "User created successfully", "user", dto.NewUserResponse(user))
}

// GetUser (GET /users/:id)
func (ctrl *UserController) GetUser(c *gin.Context) {
	user, err := ctrl.UserSvc.FindUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		utils.JSONError(c, http.StatusNotFound, "Usuário não encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserResponse(user)})
}
