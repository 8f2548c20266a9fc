package route

import (
	"halodkm_backend/internals/constants"
	"halodkm_backend/internals/features/dashboard/controller"
	"halodkm_backend/internals/features/dashboard/repository"
	"halodkm_backend/internals/features/dashboard/service"
	helper "halodkm_backend/internals/helpers"
	authMiddleware "halodkm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	svc := service.NewService(repository.NewStatsRepository(db), helper.JakartaLocation())
	ctrl := controller.NewDashboardController(svc)

	api.Get("/dashboard/stats",
		authMiddleware.OnlyRoles(constants.RoleErrorMember("dashboard"), constants.AllRoles...),
		ctrl.GetStats,
	)
}
