// Package identity carries the already-authenticated caller through handlers
// into the services, which use it for audit attribution.
package identity

import (
	"halodkm_backend/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

const (
	LocCaller   = "caller"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

type Caller struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

func (c Caller) Valid() bool { return c.ID > 0 && c.Role != "" }

// Require returns Unauthorized when no caller was attached to the request.
func (c Caller) Require() error {
	if c.ID <= 0 {
		return apperror.New(apperror.Unauthorized, "Unauthorized: identitas pengguna tidak ditemukan")
	}
	return nil
}

// Store menyimpan caller di locals (dipanggil oleh gate auth).
func Store(c *fiber.Ctx, caller Caller) {
	c.Locals(LocCaller, caller)
	c.Locals(LocUserID, caller.ID)
	c.Locals(LocUserRole, caller.Role)
}

// FromCtx mengambil caller dari locals; zero value kalau belum ada.
func FromCtx(c *fiber.Ctx) Caller {
	if v, ok := c.Locals(LocCaller).(Caller); ok {
		return v
	}
	return Caller{}
}
