package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"loan-api/internal/core/server"
	mdw "loan-api/internal/transport/http/middleware"
)

// NewAdminEngine 只暴露会计面，供独立端口部署使用；
// 与主 API 共用同一套 JWT 和存储。
func NewAdminEngine(d Deps) *gin.Engine {
	r := server.NewBase(d.Log)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(50, 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	acct := r.Group("/api/v1/accountant")
	acct.Use(mdw.AuthJWT(d.JWT))
	mountAccountant(acct, d)

	return r
}
