package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"loan-api/internal/core/config"
	"loan-api/internal/domain"
	"loan-api/pkg/utils"
)

// SeedAccountant 保证初始化后恰好存在一个会计账户；已存在则不动
func SeedAccountant(db *gorm.DB, seed config.Seed, l *zap.Logger) error {
	var count int64
	if err := db.Model(&domain.User{}).
		Where("role = ?", domain.RoleAccountant).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(seed.Password)
	if err != nil {
		return err
	}
	acc := domain.User{
		FirstName:     seed.FirstName,
		LastName:      seed.LastName,
		Username:      seed.Username,
		Age:           30,
		Email:         seed.Email,
		MonthlyIncome: 5000,
		IsBlocked:     false,
		PasswordHash:  hash,
		Role:          domain.RoleAccountant,
	}
	if err := db.Create(&acc).Error; err != nil {
		return err
	}
	l.Info("accountant seeded", zap.Uint("id", acc.ID), zap.String("username", acc.Username))
	return nil
}
