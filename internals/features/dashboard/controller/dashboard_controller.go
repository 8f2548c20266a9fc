package controller

import (
	"time"

	"halodkm_backend/internals/features/dashboard/service"
	helper "halodkm_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Service *service.Service
	Now     func() time.Time
}

func NewDashboardController(svc *service.Service) *DashboardController {
	return &DashboardController{Service: svc, Now: time.Now}
}

// 🟢 GET /api/v1/dashboard/stats
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.Service.Stats(c.UserContext(), ctrl.Now())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Statistik dashboard berhasil diambil", fiber.Map{"stats": stats})
}
