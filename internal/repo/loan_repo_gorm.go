package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"loan-api/internal/domain"
)

type LoanRepo struct{ db *gorm.DB }

func NewLoanRepo(db *gorm.DB) *LoanRepo { return &LoanRepo{db: db} }

func (r *LoanRepo) Create(l *domain.Loan) error { return r.db.Create(l).Error }

func (r *LoanRepo) FindByID(id uint) (*domain.Loan, error) {
	var l domain.Loan
	err := r.db.First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByUser 按创建时间倒序；同一瞬间创建的顺序不保证
func (r *LoanRepo) FindByUser(userID uint) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

func (r *LoanRepo) FindAll() ([]domain.Loan, error) {
	var loans []domain.Loan
	err := r.db.Order("created_at DESC").Find(&loans).Error
	return loans, err
}

// Update 每次变更都打 UpdatedAt
func (r *LoanRepo) Update(l *domain.Loan) error {
	now := time.Now().UTC()
	l.UpdatedAt = &now
	return r.db.Save(l).Error
}

func (r *LoanRepo) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&domain.Loan{}).Error
}

func (r *LoanRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Loan{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
