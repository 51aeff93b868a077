package handler

import (
	"github.com/gin-gonic/gin"

	"loan-api/internal/apperr"
	"loan-api/internal/service"
	"loan-api/internal/transport/http/dto"
	mdw "loan-api/internal/transport/http/middleware"
	resp "loan-api/internal/transport/http/response"
)

// LoanHandler 自助面：所有操作都以调用者自己的 userId 为准
type LoanHandler struct {
	svc *service.LoanService
}

func NewLoanHandler(svc *service.LoanService) *LoanHandler {
	return &LoanHandler{svc: svc}
}

// Create POST /loans
func (h *LoanHandler) Create(c *gin.Context) {
	ident, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
	var in dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.BadRequest("invalid request body"))
		return
	}
	if err := dto.Validate(&in); err != nil {
		resp.Fail(c, err)
		return
	}

	l, err := h.svc.Create(c.Request.Context(), ident.UserID, service.LoanInput{
		LoanType: in.LoanType,
		Amount:   in.Amount,
		Currency: in.Currency,
		Period:   in.Period,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, "loan application created successfully", l)
}

// List GET /loans
func (h *LoanHandler) List(c *gin.Context) {
	ident, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
	loans, err := h.svc.ListOwn(c.Request.Context(), ident.UserID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "your loans", loans)
}

// Get GET /loans/:id
func (h *LoanHandler) Get(c *gin.Context) {
	ident, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
	loanID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	l, err := h.svc.GetOwn(c.Request.Context(), ident.UserID, loanID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan details", l)
}

// Update PUT /loans/:id
func (h *LoanHandler) Update(c *gin.Context) {
	ident, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
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

	l, err := h.svc.UpdateOwn(c.Request.Context(), ident.UserID, loanID, patch)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan updated successfully", l)
}

// Delete DELETE /loans/:id
func (h *LoanHandler) Delete(c *gin.Context) {
	ident, ok := mdw.Identity(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("missing token"))
		return
	}
	loanID, err := parseID(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.svc.DeleteOwn(c.Request.Context(), ident.UserID, loanID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "loan deleted successfully", nil)
}

func bindLoanPatch(c *gin.Context) (service.LoanPatch, error) {
	var in dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		return service.LoanPatch{}, apperr.BadRequest("invalid request body")
	}
	if err := dto.Validate(&in); err != nil {
		return service.LoanPatch{}, err
	}
	return service.LoanPatch{
		LoanType: in.LoanType,
		Amount:   in.Amount,
		Currency: in.Currency,
		Period:   in.Period,
	}, nil
}
