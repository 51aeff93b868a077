package handler

import (
	"github.com/gin-gonic/gin"

	"loan-api/internal/apperr"
	"loan-api/internal/service"
	"loan-api/internal/transport/http/dto"
	resp "loan-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in dto.RegisterRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.BadRequest("invalid request body"))
		return
	}
	if err := dto.Validate(&in); err != nil {
		resp.Fail(c, err)
		return
	}

	token, u, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Username:      in.Username,
		Age:           in.Age,
		Email:         in.Email,
		MonthlyIncome: in.MonthlyIncome,
		Password:      in.Password,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, "registration completed successfully", dto.AuthResponse{Token: token, User: u})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in dto.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.BadRequest("invalid request body"))
		return
	}
	if err := dto.Validate(&in); err != nil {
		resp.Fail(c, err)
		return
	}

	token, u, err := h.svc.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "login completed successfully", dto.AuthResponse{Token: token, User: u})
}
