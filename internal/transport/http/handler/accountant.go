package handler

import (
	"github.com/gin-gonic/gin"

	"loan-api/internal/apperr"
	"loan-api/internal/service"
	"loan-api/internal/transport/http/dto"
	resp "loan-api/internal/transport/http/response"
)

// AccountantHandler 特权面：不做归属检查，状态门也不生效
type AccountantHandler struct {
	loans *service.LoanService
	users *service.UserService
}

func NewAccountantHandler(loans *service.LoanService, users *service.UserService) *AccountantHandler {
	return &AccountantHandler{loans: loans, users: users}
}

// ListLoans GET /accountant/loans
func (h *AccountantHandler) ListLoans(c *gin.Context) {
	loans, err := h.loans.ListAll(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "all loans", loans)
}

// GetLoan GET /accountant/loans/:id
func (h *AccountantHandler) GetLoan(c *gin.Context) {
	loanID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	l, err := h.loans.GetAny(c.Request.Context(), loanID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan details", l)
}

// UpdateLoan PUT /accountant/loans/:id
func (h *AccountantHandler) UpdateLoan(c *gin.Context) {
	loanID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	patch, err := bindLoanPatch(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	l, err := h.loans.UpdateAny(c.Request.Context(), loanID, patch)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan updated successfully", l)
}

// SetLoanStatus PATCH /accountant/loans/:id/status
func (h *AccountantHandler) SetLoanStatus(c *gin.Context) {
	loanID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	var in dto.UpdateLoanStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.BadRequest("invalid request body"))
		return
	}
	if err := dto.Validate(&in); err != nil {
		resp.Fail(c, err)
		return
	}

	l, err := h.loans.SetStatus(c.Request.Context(), loanID, in.Status)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan status updated successfully", l)
}

// DeleteLoan DELETE /accountant/loans/:id
func (h *AccountantHandler) DeleteLoan(c *gin.Context) {
	loanID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.loans.DeleteAny(c.Request.Context(), loanID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan deleted successfully", nil)
}

// BlockUser PUT /accountant/users/:id/block
func (h *AccountantHandler) BlockUser(c *gin.Context) {
	h.setBlocked(c, true, "user blocked successfully")
}

// UnblockUser PUT /accountant/users/:id/unblock
func (h *AccountantHandler) UnblockUser(c *gin.Context) {
	h.setBlocked(c, false, "user unblocked successfully")
}

// PatchBlock PATCH /accountant/users/:id/block — 显式传目标状态，幂等
func (h *AccountantHandler) PatchBlock(c *gin.Context) {
	var in dto.BlockUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.BadRequest("invalid request body"))
		return
	}
	if err := dto.Validate(&in); err != nil {
		resp.Fail(c, err)
		return
	}
	msg := "user unblocked successfully"
	if *in.IsBlocked {
		msg = "user blocked successfully"
	}
	h.setBlocked(c, *in.IsBlocked, msg)
}

func (h *AccountantHandler) setBlocked(c *gin.Context, blocked bool, msg string) {
	userID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.users.SetBlocked(c.Request.Context(), userID, blocked); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, msg, nil)
}
