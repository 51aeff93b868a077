package dto

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"loan-api/internal/apperr"
	"loan-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误按 json 字段名上报
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
			if r > unicode.MaxASCII {
				return false
			}
		}
		return true
	}))
	must(v.RegisterValidation("password_upper", containsClass(unicode.IsUpper)))
	must(v.RegisterValidation("password_lower", containsClass(unicode.IsLower)))
	must(v.RegisterValidation("password_digit", containsClass(unicode.IsDigit)))
	must(v.RegisterValidation("loan_type", func(fl validator.FieldLevel) bool {
		return domain.LoanType(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return domain.Currency(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("loan_status", func(fl validator.FieldLevel) bool {
		return domain.LoanStatus(fl.Field().String()).Valid()
	}))
	return v
}

func containsClass(class func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if class(r) {
				return true
			}
		}
		return false
	}
}

// Validate 把 validator 的结果收敛成 字段 → 消息列表，
// 多个字段同时违规要一次性全部上报。
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal("validate request failed", err)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return apperr.Validation(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	case "username_chars":
		return "username may only contain letters, digits and underscores"
	case "password_upper":
		return "password must contain at least one uppercase letter"
	case "password_lower":
		return "password must contain at least one lowercase letter"
	case "password_digit":
		return "password must contain at least one digit"
	case "loan_type":
		return "invalid loan type"
	case "currency_code":
		return "invalid currency"
	case "loan_status":
		return "invalid loan status"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
