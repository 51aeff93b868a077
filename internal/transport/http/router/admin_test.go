package router

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"loan-api/internal/core/auth"
	"loan-api/internal/domain"
	"loan-api/internal/repo"
	"loan-api/internal/service"
)

func newAdminEngine(t *testing.T) (*gin.Engine, *auth.JWTer) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "loanapi.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Loan{}))

	log := zap.NewNop()
	jwter := &auth.JWTer{Secret: []byte("admin-test-secret"), Issuer: "loan-api-test", TTL: time.Hour}
	userRepo := repo.NewUserRepo(db)
	loanRepo := repo.NewLoanRepo(db)

	engine := NewAdminEngine(Deps{
		Log:   log,
		JWT:   jwter,
		Users: service.NewUserService(userRepo, nil, log),
		Loans: service.NewLoanService(loanRepo, userRepo, log),
	})
	return engine, jwter
}

func TestAdminEngineRoleGate(t *testing.T) {
	engine, jwter := newAdminEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accountant/loans", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	userToken, err := jwter.Issue(&domain.User{ID: 2, Username: "nobody", Role: domain.RoleUser})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accountant/loans", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	accToken, err := jwter.Issue(&domain.User{ID: 1, Username: "accountant", Role: domain.RoleAccountant})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/accountant/loans", nil)
	req.Header.Set("Authorization", "Bearer "+accToken)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

// panic 恢复由基础引擎统一提供，处理器崩溃只影响当前请求
func TestAdminEngineRecoversPanic(t *testing.T) {
	engine, _ := newAdminEngine(t)
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
