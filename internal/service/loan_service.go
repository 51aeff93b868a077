package service

import (
	"context"

	"go.uber.org/zap"

	"loan-api/internal/apperr"
	"loan-api/internal/domain"
)

type LoanInput struct {
	LoanType domain.LoanType
	Amount   float64
	Currency domain.Currency
	Period   int
}

// LoanPatch 部分更新：只有非 nil 字段覆盖存量值
type LoanPatch struct {
	LoanType *domain.LoanType
	Amount   *float64
	Currency *domain.Currency
	Period   *int
}

const (
	msgLoanNotFound  = "loan not found"
	msgLoanForbidden = "you do not have access to this loan"
)

// LoanService 核心授权规则：
//   - 所有者只能在 InProcess 状态下改/删自己的贷款
//   - 会计不受状态门限制，且独占状态流转
type LoanService struct {
	loans domain.LoanRepository
	users domain.UserRepository
	log   *zap.Logger
}

func NewLoanService(loans domain.LoanRepository, users domain.UserRepository, log *zap.Logger) *LoanService {
	return &LoanService{loans: loans, users: users, log: log}
}

// ---------- 所有者操作 ----------

func (s *LoanService) Create(ctx context.Context, userID uint, in LoanInput) (*domain.Loan, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if u.IsBlocked {
		s.log.Warn("blocked user attempted to create loan", zap.Uint("userId", userID))
		return nil, apperr.Forbidden("you are blocked and cannot request a loan")
	}

	l := &domain.Loan{
		UserID:   userID,
		LoanType: in.LoanType,
		Amount:   in.Amount,
		Currency: in.Currency,
		Period:   in.Period,
		Status:   domain.StatusInProcess,
	}
	if err := s.loans.Create(l); err != nil {
		return nil, apperr.Internal("create loan failed", err)
	}
	s.log.Info("loan created", zap.Uint("loanId", l.ID), zap.Uint("userId", userID))
	return l, nil
}

func (s *LoanService) ListOwn(ctx context.Context, userID uint) ([]domain.Loan, error) {
	loans, err := s.loans.FindByUser(userID)
	if err != nil {
		return nil, apperr.Internal("list loans failed", err)
	}
	return loans, nil
}

// GetOwn 不存在回 404；归属他人回 403（文案与其它拒绝一致，状态码有意区分）
func (s *LoanService) GetOwn(ctx context.Context, userID, loanID uint) (*domain.Loan, error) {
	l, err := s.findOwned(userID, loanID, "access")
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LoanService) UpdateOwn(ctx context.Context, userID, loanID uint, patch LoanPatch) (*domain.Loan, error) {
	l, err := s.findOwned(userID, loanID, "update")
	if err != nil {
		return nil, err
	}
	if l.Status != domain.StatusInProcess {
		s.log.Warn("status-gated update rejected",
			zap.Uint("userId", userID), zap.Uint("loanId", loanID), zap.String("status", string(l.Status)))
		return nil, apperr.BadRequest("only loans in process can be updated")
	}

	applyPatch(l, patch)
	if err := s.loans.Update(l); err != nil {
		return nil, apperr.Internal("update loan failed", err)
	}
	s.log.Info("loan updated", zap.Uint("loanId", loanID), zap.Uint("userId", userID))
	return l, nil
}

func (s *LoanService) DeleteOwn(ctx context.Context, userID, loanID uint) error {
	l, err := s.findOwned(userID, loanID, "delete")
	if err != nil {
		return err
	}
	if l.Status != domain.StatusInProcess {
		s.log.Warn("status-gated delete rejected",
			zap.Uint("userId", userID), zap.Uint("loanId", loanID), zap.String("status", string(l.Status)))
		return apperr.BadRequest("only loans in process can be deleted")
	}

	if err := s.loans.Delete(loanID); err != nil {
		return apperr.Internal("delete loan failed", err)
	}
	s.log.Info("loan deleted", zap.Uint("loanId", loanID), zap.Uint("userId", userID))
	return nil
}

func (s *LoanService) findOwned(userID, loanID uint, action string) (*domain.Loan, error) {
	l, err := s.loans.FindByID(loanID)
	if err != nil {
		return nil, apperr.Internal("lookup loan failed", err)
	}
	if l == nil {
		return nil, apperr.NotFound(msgLoanNotFound)
	}
	if l.UserID != userID {
		s.log.Warn("foreign loan access rejected",
			zap.Uint("userId", userID), zap.Uint("loanId", loanID), zap.String("action", action))
		return nil, apperr.Forbidden(msgLoanForbidden)
	}
	return l, nil
}

// ---------- 会计操作 ----------

func (s *LoanService) ListAll(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loans.FindAll()
	if err != nil {
		return nil, apperr.Internal("list loans failed", err)
	}
	return loans, nil
}

func (s *LoanService) GetAny(ctx context.Context, loanID uint) (*domain.Loan, error) {
	l, err := s.loans.FindByID(loanID)
	if err != nil {
		return nil, apperr.Internal("lookup loan failed", err)
	}
	if l == nil {
		return nil, apperr.NotFound(msgLoanNotFound)
	}
	return l, nil
}

// UpdateAny 无状态门：已批准/已拒绝的贷款会计也可以改
func (s *LoanService) UpdateAny(ctx context.Context, loanID uint, patch LoanPatch) (*domain.Loan, error) {
	l, err := s.GetAny(ctx, loanID)
	if err != nil {
		return nil, err
	}

	applyPatch(l, patch)
	if err := s.loans.Update(l); err != nil {
		return nil, apperr.Internal("update loan failed", err)
	}
	s.log.Info("loan updated by accountant", zap.Uint("loanId", loanID))
	return l, nil
}

// SetStatus 无条件覆盖：不校验新旧是否相同，也不限制流转方向
func (s *LoanService) SetStatus(ctx context.Context, loanID uint, status domain.LoanStatus) (*domain.Loan, error) {
	l, err := s.GetAny(ctx, loanID)
	if err != nil {
		return nil, err
	}

	l.Status = status
	if err := s.loans.Update(l); err != nil {
		return nil, apperr.Internal("update loan status failed", err)
	}
	s.log.Info("loan status set", zap.Uint("loanId", loanID), zap.String("status", string(status)))
	return l, nil
}

func (s *LoanService) DeleteAny(ctx context.Context, loanID uint) error {
	exists, err := s.loans.Exists(loanID)
	if err != nil {
		return apperr.Internal("lookup loan failed", err)
	}
	if !exists {
		return apperr.NotFound(msgLoanNotFound)
	}

	if err := s.loans.Delete(loanID); err != nil {
		return apperr.Internal("delete loan failed", err)
	}
	s.log.Info("loan deleted by accountant", zap.Uint("loanId", loanID))
	return nil
}

func applyPatch(l *domain.Loan, p LoanPatch) {
	if p.LoanType != nil {
		l.LoanType = *p.LoanType
	}
	if p.Amount != nil {
		l.Amount = *p.Amount
	}
	if p.Currency != nil {
		l.Currency = *p.Currency
	}
	if p.Period != nil {
		l.Period = *p.Period
	}
}
