package route

import (
	"halodkm_backend/internals/constants"
	auditService "halodkm_backend/internals/features/audit/service"
	"halodkm_backend/internals/features/finance/kas/controller"
	"halodkm_backend/internals/features/finance/kas/repository"
	"halodkm_backend/internals/features/finance/kas/service"
	authMiddleware "halodkm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func KasRoutes(api fiber.Router, db *gorm.DB, sink auditService.Sink) {
	svc := service.NewService(repository.NewKasRepository(db), sink)
	ctrl := controller.NewKasController(svc)

	kas := api.Group("/kas")

	// 🔹 Admin & jamaah boleh melihat
	kas.Get("/",
		authMiddleware.OnlyRoles(constants.RoleErrorMember("melihat kas masjid"), constants.AllRoles...),
		ctrl.GetKas,
	)

	// 🔹 Admin saja
	onlyAdmin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kas masjid"), constants.AdminOnly...)
	kas.Post("/", onlyAdmin, ctrl.CreateKas)
	kas.Put("/:id", onlyAdmin, ctrl.UpdateKas)
	kas.Delete("/:id", onlyAdmin, ctrl.DeleteKas)
}
