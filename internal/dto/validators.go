package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// nitPattern matches Guatemalan NITs: digits with an optional dash before the
// final check digit, which may be K.
var nitPattern = regexp.MustCompile(`^[0-9]{4,12}-?[0-9K]$`)

// RegisterCustomValidators attaches domain validations to gin's binding
// engine. Called once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nit", func(fl validator.FieldLevel) bool {
			return nitPattern.MatchString(fl.Field().String())
		})
	}
}
