package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator: validator dengan nama field mengikuti tag json.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
