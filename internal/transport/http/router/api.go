package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"loan-api/internal/core/auth"
	"loan-api/internal/core/server"
	"loan-api/internal/domain"
	"loan-api/internal/service"
	"loan-api/internal/transport/http/handler"
	mdw "loan-api/internal/transport/http/middleware"
)

// Deps 显式依赖注入，不走全局注册表
type Deps struct {
	Log   *zap.Logger
	JWT   *auth.JWTer
	Auth  *service.AuthService
	Users *service.UserService
	Loans *service.LoanService
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := server.NewBase(d.Log)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handler.NewAuthHandler(d.Auth)
	userH := handler.NewUserHandler(d.Users)
	loanH := handler.NewLoanHandler(d.Loans)

	api := r.Group("/api/v1")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	// 鉴权分组
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWT))

	authed.GET("/users/me", userH.Me)
	authed.GET("/users/:id", userH.GetByID)

	// 自助面：仅 User 角色
	loans := authed.Group("/loans", mdw.RequireRole(domain.RoleUser))
	loans.POST("", loanH.Create)
	loans.GET("", loanH.List)
	loans.GET("/:id", loanH.Get)
	loans.PUT("/:id", loanH.Update)
	loans.DELETE("/:id", loanH.Delete)

	// 特权面：仅 Accountant 角色
	mountAccountant(authed.Group("/accountant"), d)

	return r
}

func mountAccountant(g *gin.RouterGroup, d Deps) {
	g.Use(mdw.RequireRole(domain.RoleAccountant))

	acctH := handler.NewAccountantHandler(d.Loans, d.Users)
	g.GET("/loans", acctH.ListLoans)
	g.GET("/loans/:id", acctH.GetLoan)
	g.PUT("/loans/:id", acctH.UpdateLoan)
	g.PATCH("/loans/:id/status", acctH.SetLoanStatus)
	g.DELETE("/loans/:id", acctH.DeleteLoan)

	g.PUT("/users/:id/block", acctH.BlockUser)
	g.PUT("/users/:id/unblock", acctH.UnblockUser)
	g.PATCH("/users/:id/block", acctH.PatchBlock)
}
