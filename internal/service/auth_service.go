package service

import (
	"context"

	"go.uber.org/zap"

	"loan-api/internal/apperr"
	"loan-api/internal/core/auth"
	"loan-api/internal/domain"
	"loan-api/pkg/utils"
)

type RegisterInput struct {
	FirstName     string
	LastName      string
	Username      string
	Age           int
	Email         string
	MonthlyIncome float64
	Password      string
}

// 用户名查不到和密码不对必须回同一句话，避免用户名枚举
const msgBadCredentials = "invalid username or password"

type AuthService struct {
	users domain.UserRepository
	jwt   *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwt *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwt: jwt, log: log}
}

// Register 先查用户名、再查邮箱是快路径提示；两步之间的并发竞态
// 由存储层唯一约束兜底，冲突时回generic错误。
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, *domain.User, error) {
	existing, err := s.users.FindByUsername(in.Username)
	if err != nil {
		return "", nil, apperr.Internal("lookup username failed", err)
	}
	if existing != nil {
		s.log.Warn("registration rejected: username taken", zap.String("username", in.Username))
		return "", nil, apperr.BadRequest("username is already taken")
	}

	existing, err = s.users.FindByEmail(in.Email)
	if err != nil {
		return "", nil, apperr.Internal("lookup email failed", err)
	}
	if existing != nil {
		s.log.Warn("registration rejected: email in use", zap.String("email", in.Email))
		return "", nil, apperr.BadRequest("email is already in use")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", nil, apperr.Internal("hash password failed", err)
	}

	u := &domain.User{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Username:      in.Username,
		Age:           in.Age,
		Email:         in.Email,
		MonthlyIncome: in.MonthlyIncome,
		PasswordHash:  hash,
		Role:          domain.RoleUser,
		IsBlocked:     false,
	}
	if err := s.users.Create(u); err != nil {
		if apperr.IsDuplicateKey(err) {
			return "", nil, apperr.BadRequest("username or email is already in use")
		}
		return "", nil, apperr.Internal("create user failed", err)
	}

	token, err := s.jwt.Issue(u)
	if err != nil {
		return "", nil, apperr.Internal("issue token failed", err)
	}
	s.log.Info("user registered", zap.Uint("id", u.ID), zap.String("username", u.Username))
	return token, u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return "", nil, apperr.Internal("lookup username failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		s.log.Warn("login failed", zap.String("username", username))
		return "", nil, apperr.Unauthorized(msgBadCredentials)
	}

	token, err := s.jwt.Issue(u)
	if err != nil {
		return "", nil, apperr.Internal("issue token failed", err)
	}
	s.log.Info("user logged in", zap.Uint("id", u.ID), zap.String("username", u.Username))
	return token, u, nil
}
