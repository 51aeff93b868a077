package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"loan-api/internal/apperr"
	"loan-api/internal/core/cache"
	"loan-api/internal/domain"
)

const profileTTL = 5 * time.Minute

type UserService struct {
	users domain.UserRepository
	cache *cache.Cache // 可为 nil（未配置 redis）
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, c *cache.Cache, log *zap.Logger) *UserService {
	return &UserService{users: users, cache: c, log: log}
}

func profileKey(id uint) string { return fmt.Sprintf("user:profile:%d", id) }

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	load := func(ctx context.Context) (*domain.User, error) {
		return s.users.FindByID(id)
	}

	var u *domain.User
	var err error
	if s.cache != nil {
		u, err = cache.GetOrLoadJSON(s.cache, ctx, profileKey(id), profileTTL, load)
	} else {
		u, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		s.log.Warn("user not found", zap.Uint("id", id))
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

// GetCurrentUser 与 GetByID 同契约，id 取调用者自己的
func (s *UserService) GetCurrentUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.GetByID(ctx, id)
}

// SetBlocked 幂等；会计账户双向禁止封禁操作
func (s *UserService) SetBlocked(ctx context.Context, id uint, blocked bool) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		return apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		s.log.Warn("block target not found", zap.Uint("id", id))
		return apperr.NotFound("user not found")
	}
	if u.Role == domain.RoleAccountant {
		s.log.Warn("attempt to change block state of accountant", zap.Uint("id", id))
		return apperr.BadRequest("an accountant cannot be blocked or unblocked")
	}

	u.IsBlocked = blocked
	if err := s.users.Update(u); err != nil {
		return apperr.Internal("update user failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, profileKey(id))
	}
	s.log.Info("user block state changed", zap.Uint("id", id), zap.Bool("blocked", blocked))
	return nil
}
