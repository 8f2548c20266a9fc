// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"halodkm_backend/internals/configs"
	auditRoute "halodkm_backend/internals/features/audit/route"
	auditService "halodkm_backend/internals/features/audit/service"
	dashboardRoute "halodkm_backend/internals/features/dashboard/route"
	eventRoute "halodkm_backend/internals/features/events/route"
	eventService "halodkm_backend/internals/features/events/service"
	kasRoute "halodkm_backend/internals/features/finance/kas/route"
	"halodkm_backend/internals/middlewares"
	authMiddleware "halodkm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// Resolver menyusun urutan sumber identitas dari konfigurasi.
func Resolver() authMiddleware.Resolver {
	chain := authMiddleware.ChainResolver{
		authMiddleware.JWTResolver{Secret: configs.JWTSecret, Skew: 30 * time.Second},
	}
	if configs.AllowUserInfoHeader {
		chain = append(chain, authMiddleware.HeaderResolver{})
	}
	return chain
}

func SetupRoutes(app *fiber.App, db *gorm.DB, sink auditService.Sink) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== PRIVATE (/api/v1) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api/v1", authMiddleware.AuthGate(Resolver()))

	log.Println("[INFO] Mounting Event routes...")
	api.Post("/events/:id/complete", middlewares.CompletionRateLimiter())
	eventRoute.EventRoutes(api, db, sink,
		eventService.WithLockedCompletedMetadata(configs.LockCompletedEventMetadata),
	)

	log.Println("[INFO] Mounting Kas routes...")
	kasRoute.KasRoutes(api, db, sink)

	log.Println("[INFO] Mounting Dashboard routes...")
	dashboardRoute.DashboardRoutes(api, db)

	log.Println("[INFO] Mounting Audit routes...")
	auditRoute.AuditAdminRoutes(api, db)
}
