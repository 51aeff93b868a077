package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"loan-api/internal/apperr"
	"loan-api/internal/domain"
	"loan-api/internal/service"
	mdw "loan-api/internal/transport/http/middleware"
	resp "loan-api/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
	u, err := h.svc.GetCurrentUser(c.Request.Context(), id.UserID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "user profile", u)
}

// GetByID GET /users/:id — 只有本人或会计可以看
func (h *UserHandler) GetByID(c *gin.Context) {
	ident, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
	targetID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if ident.UserID != targetID && ident.Role != domain.RoleAccountant {
		resp.Fail(c, apperr.Forbidden("forbidden"))
		return
	}

	u, err := h.svc.GetByID(c.Request.Context(), targetID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "user profile", u)
}

func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid id")
	}
	return uint(v), nil
}
