package helper

import (
	"errors"
	"log"

	"halodkm_backend/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

// FromAppError mengubah error dari service (apperror / *fiber.Error) menjadi
// response JSON konsisten. Error lain jadi 500 tanpa membocorkan detail.
func FromAppError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		if ae.Kind == apperror.Internal {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		}
		return JsonErrorCode(c, ae.Kind.HTTPStatus(), ae.Kind.String(), ae.Message)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// ErrorHandler dipasang di fiber.Config agar error dari middleware ikut format yang sama.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromAppError(c, err)
}
