package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"loan-api/internal/apperr"
	"loan-api/internal/core/auth"
	"loan-api/internal/domain"
	"loan-api/internal/repo"
	"loan-api/pkg/utils"
)

type testEnv struct {
	db    *gorm.DB
	jwt   *auth.JWTer
	auths *AuthService
	users *UserService
	loans *LoanService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "loanapi.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Loan{}))
	return db
}

func newEnvJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "loan-api-test", TTL: time.Hour}
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	jwter := newEnvJWTer()
	log := zap.NewNop()
	userRepo := repo.NewUserRepo(db)
	loanRepo := repo.NewLoanRepo(db)
	return &testEnv{
		db:    db,
		jwt:   jwter,
		auths: NewAuthService(userRepo, jwter, log),
		users: NewUserService(userRepo, nil, log),
		loans: NewLoanService(loanRepo, userRepo, log),
	}
}

func registerInput(username string) RegisterInput {
	return RegisterInput{
		FirstName:     "Nino",
		LastName:      "Beridze",
		Username:      username,
		Age:           25,
		Email:         username + "@example.com",
		MonthlyIncome: 2000,
		Password:      "Secret123",
	}
}

func (e *testEnv) registerUser(t *testing.T, username string) *domain.User {
	t.Helper()
	_, u, err := e.auths.Register(context.Background(), registerInput(username))
	require.NoError(t, err)
	return u
}

func (e *testEnv) seedAccountant(t *testing.T) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword("Admin123!")
	require.NoError(t, err)
	acc := &domain.User{
		FirstName:     "Admin",
		LastName:      "Accountant",
		Username:      "accountant",
		Age:           30,
		Email:         "accountant@loanapi.com",
		MonthlyIncome: 5000,
		PasswordHash:  hash,
		Role:          domain.RoleAccountant,
	}
	require.NoError(t, e.db.Create(acc).Error)
	return acc
}

func (e *testEnv) createLoan(t *testing.T, userID uint) *domain.Loan {
	t.Helper()
	l, err := e.loans.Create(context.Background(), userID, LoanInput{
		LoanType: domain.LoanQuick,
		Amount:   5000,
		Currency: domain.CurrencyGEL,
		Period:   12,
	})
	require.NoError(t, err)
	return l
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, apperr.KindOf(err), "unexpected error kind: %v", err)
}
