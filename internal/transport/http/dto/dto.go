package dto

import "loan-api/internal/domain"

type RegisterRequest struct {
	FirstName     string  `json:"firstName" validate:"required,max=100"`
	LastName      string  `json:"lastName" validate:"required,max=100"`
	Username      string  `json:"username" validate:"required,min=3,max=50,username_chars"`
	Age           int     `json:"age" validate:"required,gte=18,lte=100"`
	Email         string  `json:"email" validate:"required,email,max=100"`
	MonthlyIncome float64 `json:"monthlyIncome" validate:"required,gt=0"`
	Password      string  `json:"password" validate:"required,min=6,max=72,password_upper,password_lower,password_digit"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type CreateLoanRequest struct {
	LoanType domain.LoanType `json:"loanType" validate:"required,loan_type"`
	Amount   float64         `json:"amount" validate:"required,gt=0,lte=1000000"`
	Currency domain.Currency `json:"currency" validate:"required,currency_code"`
	Period   int             `json:"period" validate:"required,gte=1,lte=360"`
}

// UpdateLoanRequest 四个字段各自可选；出现的字段照常校验
type UpdateLoanRequest struct {
	LoanType *domain.LoanType `json:"loanType" validate:"omitnil,loan_type"`
	Amount   *float64         `json:"amount" validate:"omitnil,gt=0,lte=1000000"`
	Currency *domain.Currency `json:"currency" validate:"omitnil,currency_code"`
	Period   *int             `json:"period" validate:"omitnil,gte=1,lte=360"`
}

type UpdateLoanStatusRequest struct {
	Status domain.LoanStatus `json:"status" validate:"required,loan_status"`
}

type BlockUserRequest struct {
	IsBlocked *bool `json:"isBlocked" validate:"required"`
}
