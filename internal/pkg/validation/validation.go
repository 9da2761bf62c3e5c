// Package validation holds the client facing input rules: the e-mail pattern,
// the password strength classes and a shared validator with Indonesian messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const MinPasswordLength = 8

// Bounds of the listing columns: price is decimal(12,3), counts are INT.
const (
	MaxPriceScale  = 3
	MaxCountDigits = 9
)

var maxPrice = decimal.New(1, 12-MaxPriceScale)

const (
	MsgPasswordLength    = "Password minimal 8 karakter"
	MsgPasswordUppercase = "Password harus mengandung huruf besar"
	MsgPasswordLowercase = "Password harus mengandung huruf kecil"
	MsgPasswordDigit     = "Password harus mengandung angka"
	MsgPasswordMismatch  = "Password dan konfirmasi password tidak cocok"
	MsgEmailInvalid      = "Format email tidak valid"
)

// IsValidEmail reports whether s looks like local@domain.tld
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordIssues returns one message per failed strength class, in the order
// length, uppercase, lowercase, digit. A strong password yields nil.
func PasswordIssues(password string) []string {
	var issues []string
	// length counts characters, not bytes
	if len([]rune(password)) < MinPasswordLength {
		issues = append(issues, MsgPasswordLength)
	}
	if !strings.ContainsFunc(password, isASCIIUpper) {
		issues = append(issues, MsgPasswordUppercase)
	}
	if !strings.ContainsFunc(password, isASCIILower) {
		issues = append(issues, MsgPasswordLowercase)
	}
	if !strings.ContainsFunc(password, isASCIIDigit) {
		issues = append(issues, MsgPasswordDigit)
	}
	return issues
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their human label when present
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return len(PasswordIssues(fl.Field().String())) == 0
	})
	_ = v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	})
	_ = v.RegisterValidation("price_range", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return true
		}
		return d.LessThan(maxPrice) && d.Equal(d.Truncate(MaxPriceScale))
	})
	_ = v.RegisterValidation("count", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "" {
			return true
		}
		return !strings.ContainsFunc(s, func(r rune) bool { return !isASCIIDigit(r) })
	})
	_ = v.RegisterValidation("count_range", func(fl validator.FieldLevel) bool {
		s := strings.TrimLeft(strings.TrimSpace(fl.Field().String()), "0")
		return len(s) <= MaxCountDigits
	})

	return v
}

// Validator exposes the shared instance for callers that need raw errors
func Validator() *validator.Validate {
	return validate
}

// Struct validates s and returns itemised Indonesian messages, nil when valid
func Struct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return Messages(err)
}

// Messages translates validator errors into display strings
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", field)
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s maksimal %s item", field, fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s karakter", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s minimal %s karakter", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s tidak valid", field)
	case "simple_email", "email":
		return MsgEmailInvalid
	case "strong_password":
		return strings.Join(PasswordIssues(fmt.Sprint(fe.Value())), ", ")
	case "positive_decimal":
		return fmt.Sprintf("%s harus berupa angka lebih dari 0", field)
	case "price_range":
		return fmt.Sprintf("%s harus di bawah %s dengan maksimal %d angka desimal", field, maxPrice.String(), MaxPriceScale)
	case "count":
		return fmt.Sprintf("%s harus berupa bilangan bulat", field)
	case "count_range":
		return fmt.Sprintf("%s maksimal %d digit", field, MaxCountDigits)
	case "eqfield":
		return MsgPasswordMismatch
	}
	return fmt.Sprintf("%s tidak valid", field)
}
