package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"loan-api/internal/apperr"
	"loan-api/internal/domain"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName:     "Nino",
		LastName:      "Beridze",
		Username:      "nino_b",
		Age:           25,
		Email:         "nino@example.com",
		MonthlyIncome: 2000,
		Password:      "Secret123",
	}
}

func requireFieldErrors(t *testing.T, err error, fields ...string) map[string][]string {
	t.Helper()
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindValidation, ae.Kind)
	for _, f := range fields {
		require.NotEmpty(t, ae.Fields[f], "expected violation on field %q, got %v", f, ae.Fields)
	}
	return ae.Fields
}

func TestValidateRegisterOK(t *testing.T) {
	require.NoError(t, Validate(validRegister()))
}

func TestValidateRegisterUsername(t *testing.T) {
	r := validRegister()
	r.Username = "no spaces!"
	requireFieldErrors(t, Validate(r), "username")

	r.Username = "ab"
	requireFieldErrors(t, Validate(r), "username")
}

func TestValidateRegisterPassword(t *testing.T) {
	r := validRegister()
	r.Password = "secret123" // 缺大写
	requireFieldErrors(t, Validate(r), "password")

	r.Password = "SECRET123"
	requireFieldErrors(t, Validate(r), "password")

	r.Password = "Secretxyz"
	requireFieldErrors(t, Validate(r), "password")

	r.Password = "Ab1"
	requireFieldErrors(t, Validate(r), "password")

	r.Password = "Aa1" + strings.Repeat("x", 80) // bcrypt 处理不了超过 72 字节的输入
	requireFieldErrors(t, Validate(r), "password")
}

func TestValidateRegisterAgeAndIncome(t *testing.T) {
	r := validRegister()
	r.Age = 17
	requireFieldErrors(t, Validate(r), "age")

	r = validRegister()
	r.Age = 101
	requireFieldErrors(t, Validate(r), "age")

	r = validRegister()
	r.MonthlyIncome = 0
	requireFieldErrors(t, Validate(r), "monthlyIncome")
}

// 多个字段同时违规要一次性全部上报
func TestValidateCreateLoanReportsAllViolations(t *testing.T) {
	req := CreateLoanRequest{
		LoanType: domain.LoanQuick,
		Amount:   1500000,
		Currency: domain.CurrencyGEL,
		Period:   400,
	}
	fields := requireFieldErrors(t, Validate(req), "amount", "period")
	require.Len(t, fields, 2)
}

func TestValidateCreateLoanEnums(t *testing.T) {
	req := CreateLoanRequest{
		LoanType: "Mortgage",
		Amount:   5000,
		Currency: "JPY",
		Period:   12,
	}
	requireFieldErrors(t, Validate(req), "loanType", "currency")
}

func TestValidateUpdateLoanOmittedFieldsPass(t *testing.T) {
	require.NoError(t, Validate(UpdateLoanRequest{}))

	amount := 0.0 // 显式出现的字段照常校验
	requireFieldErrors(t, Validate(UpdateLoanRequest{Amount: &amount}), "amount")

	period := 12
	require.NoError(t, Validate(UpdateLoanRequest{Period: &period}))
}

func TestValidateUpdateLoanStatus(t *testing.T) {
	require.NoError(t, Validate(UpdateLoanStatusRequest{Status: domain.StatusRejected}))
	requireFieldErrors(t, Validate(UpdateLoanStatusRequest{Status: "Pending"}), "status")
}

func TestValidateBlockUserRequiresFlag(t *testing.T) {
	requireFieldErrors(t, Validate(BlockUserRequest{}), "isBlocked")

	blocked := false // false 也是合法取值
	require.NoError(t, Validate(BlockUserRequest{IsBlocked: &blocked}))
}
