package controller

import (
	"fmt"
	"strconv"
	"strings"

	"halodkm_backend/internals/features/events/dto"
	"halodkm_backend/internals/features/events/service"
	"halodkm_backend/internals/features/finance/balance"
	helper "halodkm_backend/internals/helpers"
	"halodkm_backend/internals/helpers/identity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type EventController struct {
	Manager  *service.Manager
	Validate *validator.Validate
}

func NewEventController(m *service.Manager) *EventController {
	return &EventController{Manager: m, Validate: helper.NewValidator()}
}

// 🟢 GET /api/v1/events?status=aktif|selesai
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	items, err := ctrl.Manager.ListEvents(c.UserContext(), c.Query("status"))
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Daftar event berhasil diambil", dto.ToEventListResponse(items))
}

// 🟢 GET /api/v1/events/:id
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	detail, err := ctrl.Manager.GetEvent(c.UserContext(), id)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventDetailResponse(detail))
}

// 🟢 POST /api/v1/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tanggal_mulai harus berformat YYYY-MM-DD")
	}

	ev, err := ctrl.Manager.CreateEvent(c.UserContext(), identity.FromCtx(c), in)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Event berhasil dibuat", dto.ToEventResponse(ev))
}

// 🟡 PUT /api/v1/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	var req dto.EventRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tanggal_mulai harus berformat YYYY-MM-DD")
	}

	ev, err := ctrl.Manager.UpdateEvent(c.UserContext(), identity.FromCtx(c), id, in)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(ev))
}

// 🔴 DELETE /api/v1/events/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	if err := ctrl.Manager.DeleteEvent(c.UserContext(), identity.FromCtx(c), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Event berhasil dihapus", nil)
}

// 🟢 POST /api/v1/events/:id/complete
func (ctrl *EventController) CompleteEvent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	amount, err := ctrl.Manager.CompleteEvent(c.UserContext(), identity.FromCtx(c), id)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	msg := "Event berhasil diselesaikan."
	if amount.IsPositive() {
		msg = fmt.Sprintf("Event berhasil diselesaikan. Sisa dana %s telah ditransfer ke Kas Masjid.", balance.FormatIDR(amount))
	}
	return helper.JsonOK(c, msg, dto.CompleteEventResponse{TransferredAmount: amount})
}

// bind: parse body + validasi. ok=false → response error sudah ditulis.
func (ctrl *EventController) bind(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return false, helper.ValidationError(c, err)
	}
	return true, nil
}

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params(name)), 10, 64)
	return id, err == nil && id > 0
}
