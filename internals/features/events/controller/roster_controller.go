package controller

import (
	"halodkm_backend/internals/features/events/dto"
	helper "halodkm_backend/internals/helpers"
	"halodkm_backend/internals/helpers/identity"

	"github.com/gofiber/fiber/v2"
)

/* ====================== PENERIMA ====================== */

// 🟢 GET /api/v1/events/:id/recipients
func (ctrl *EventController) GetRecipients(c *fiber.Ctx) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	rows, err := ctrl.Manager.ListRecipients(c.UserContext(), eventID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Daftar penerima berhasil diambil", rows)
}

// 🟢 POST /api/v1/events/:id/recipients
func (ctrl *EventController) AddRecipient(c *fiber.Ctx) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	var req dto.RecipientRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	row, err := ctrl.Manager.AddRecipient(c.UserContext(), identity.FromCtx(c), eventID, req.ToInput())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Penerima berhasil ditambahkan", row)
}

// 🟡 PUT /api/v1/events/:id/recipients/:recipientId
func (ctrl *EventController) UpdateRecipient(c *fiber.Ctx) error {
	eventID, ok1 := paramID(c, "id")
	id, ok2 := paramID(c, "recipientId")
	if !ok1 || !ok2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.RecipientRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	row, err := ctrl.Manager.UpdateRecipient(c.UserContext(), identity.FromCtx(c), eventID, id, req.ToInput())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, "Penerima berhasil diperbarui", row)
}

// 🔴 DELETE /api/v1/events/:id/recipients/:recipientId
func (ctrl *EventController) DeleteRecipient(c *fiber.Ctx) error {
	eventID, ok1 := paramID(c, "id")
	id, ok2 := paramID(c, "recipientId")
	if !ok1 || !ok2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.Manager.DeleteRecipient(c.UserContext(), identity.FromCtx(c), eventID, id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Penerima berhasil dihapus", nil)
}

/* ====================== PANITIA ====================== */

// 🟢 GET /api/v1/events/:id/committee
func (ctrl *EventController) GetCommittee(c *fiber.Ctx) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	rows, err := ctrl.Manager.ListCommittee(c.UserContext(), eventID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Daftar panitia berhasil diambil", rows)
}

// 🟢 POST /api/v1/events/:id/committee
func (ctrl *EventController) AddCommitteeMember(c *fiber.Ctx) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	var req dto.CommitteeRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	row, err := ctrl.Manager.AddCommitteeMember(c.UserContext(), identity.FromCtx(c), eventID, req.ToInput())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Panitia berhasil ditambahkan", row)
}

// 🟡 PUT /api/v1/events/:id/committee/:memberId
func (ctrl *EventController) UpdateCommitteeMember(c *fiber.Ctx) error {
	eventID, ok1 := paramID(c, "id")
	id, ok2 := paramID(c, "memberId")
	if !ok1 || !ok2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.CommitteeRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	row, err := ctrl.Manager.UpdateCommitteeMember(c.UserContext(), identity.FromCtx(c), eventID, id, req.ToInput())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, "Panitia berhasil diperbarui", row)
}

// 🔴 DELETE /api/v1/events/:id/committee/:memberId
func (ctrl *EventController) DeleteCommitteeMember(c *fiber.Ctx) error {
	eventID, ok1 := paramID(c, "id")
	id, ok2 := paramID(c, "memberId")
	if !ok1 || !ok2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.Manager.DeleteCommitteeMember(c.UserContext(), identity.FromCtx(c), eventID, id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Panitia berhasil dihapus", nil)
}
