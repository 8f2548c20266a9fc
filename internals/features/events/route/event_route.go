package route

import (
	"halodkm_backend/internals/constants"
	auditService "halodkm_backend/internals/features/audit/service"
	"halodkm_backend/internals/features/events/controller"
	"halodkm_backend/internals/features/events/repository"
	"halodkm_backend/internals/features/events/service"
	authMiddleware "halodkm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventRoutes(api fiber.Router, db *gorm.DB, sink auditService.Sink, opts ...service.Option) {
	Register(api, service.NewManager(repository.NewEventRepository(db), sink, opts...))
}

// Register memasang semua route event di atas Manager yang sudah jadi.
func Register(api fiber.Router, m *service.Manager) {
	ctrl := controller.NewEventController(m)

	anyRole := authMiddleware.OnlyRoles(constants.RoleErrorMember("event"), constants.AllRoles...)
	onlyAdmin := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kelola event"), constants.AdminOnly...)

	// 🔹 Events
	ev := api.Group("/events")
	ev.Get("/", anyRole, ctrl.GetEvents)
	ev.Get("/:id", anyRole, ctrl.GetEvent)
	ev.Post("/", onlyAdmin, ctrl.CreateEvent)
	ev.Put("/:id", onlyAdmin, ctrl.UpdateEvent)
	ev.Delete("/:id", onlyAdmin, ctrl.DeleteEvent)
	ev.Post("/:id/complete", onlyAdmin, ctrl.CompleteEvent)

	// 🔹 Transaksi event
	ev.Post("/:id/transactions", onlyAdmin, ctrl.AddTransaction)
	ev.Put("/:id/transactions/:transId", onlyAdmin, ctrl.UpdateTransaction)
	ev.Delete("/:id/transactions/:transId", onlyAdmin, ctrl.DeleteTransaction)

	// 🔹 Penerima
	ev.Get("/:id/recipients", anyRole, ctrl.GetRecipients)
	ev.Post("/:id/recipients", onlyAdmin, ctrl.AddRecipient)
	ev.Put("/:id/recipients/:recipientId", onlyAdmin, ctrl.UpdateRecipient)
	ev.Delete("/:id/recipients/:recipientId", onlyAdmin, ctrl.DeleteRecipient)

	// 🔹 Panitia
	ev.Get("/:id/committee", anyRole, ctrl.GetCommittee)
	ev.Post("/:id/committee", onlyAdmin, ctrl.AddCommitteeMember)
	ev.Put("/:id/committee/:memberId", onlyAdmin, ctrl.UpdateCommitteeMember)
	ev.Delete("/:id/committee/:memberId", onlyAdmin, ctrl.DeleteCommitteeMember)
}
