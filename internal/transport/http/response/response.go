package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loan-api/internal/apperr"
)

// Body 成功响应统一信封
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorBody 失败响应；Details 仅校验错误携带字段级明细
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: message, Data: data})
}

// Fail 唯一的边界翻译器：带类型的业务错误 → 状态码；
// 未分类错误一律 500 并隐藏内部细节。
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	status := http.StatusInternalServerError
	msg := "an internal error occurred, please try again later"
	var details any

	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindNotFound:
			status = http.StatusNotFound
			msg = ae.Message
		case apperr.KindUnauthorized:
			status = http.StatusUnauthorized
			msg = ae.Message
		case apperr.KindForbidden:
			status = http.StatusForbidden
			msg = ae.Message
		case apperr.KindBadRequest:
			status = http.StatusBadRequest
			msg = ae.Message
		case apperr.KindValidation:
			status = http.StatusBadRequest
			msg = ae.Message
			details = ae.Fields
		}
	}

	c.AbortWithStatusJSON(status, ErrorBody{StatusCode: status, Message: msg, Details: details})
}
