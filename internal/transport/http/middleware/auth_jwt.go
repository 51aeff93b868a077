package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"loan-api/internal/apperr"
	"loan-api/internal/core/auth"
	"loan-api/internal/domain"
	resp "loan-api/internal/transport/http/response"
)

const keyIdentity = "identity"

// AuthJWT 解析 Bearer 令牌，把调用者身份放进请求上下文
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Fail(c, apperr.Unauthorized("missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Fail(c, apperr.Unauthorized("invalid token"))
			return
		}
		c.Set(keyIdentity, claims.Identity())
		c.Next()
	}
}

// RequireRole 角色门；挂在 AuthJWT 之后
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			resp.Fail(c, apperr.Unauthorized("missing token"))
			return
		}
		if id.Role != role {
			resp.Fail(c, apperr.Forbidden("forbidden"))
			return
		}
		c.Next()
	}
}

func Identity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(keyIdentity)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
