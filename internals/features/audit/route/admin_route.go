package route

import (
	"halodkm_backend/internals/constants"
	"halodkm_backend/internals/features/audit/controller"
	authMiddleware "halodkm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin saja
func AuditAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuditController(db)
	api.Get("/audit",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("audit log"), constants.AdminOnly...),
		ctrl.GetAuditLogs,
	)
}
