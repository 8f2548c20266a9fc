package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		name := fieldName(fe)
		fields[name] = append(fields[name], validationMessage(fe))
	}
	return JsonValidationError(c, fields)
}

func fieldName(fe validator.FieldError) string {
	// JSON name kalau validator didaftarkan dengan RegisterTagNameFunc
	if n := fe.Field(); n != "" {
		return n
	}
	return strings.ToLower(fe.StructField())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "oneof":
		return fmt.Sprintf("harus salah satu dari: %s", fe.Param())
	case "max":
		return fmt.Sprintf("maksimal %s karakter", fe.Param())
	case "datetime":
		return fmt.Sprintf("format tanggal harus %s", fe.Param())
	default:
		return fe.Tag()
	}
}
