package controller

import (
	"halodkm_backend/internals/features/events/dto"
	helper "halodkm_backend/internals/helpers"
	"halodkm_backend/internals/helpers/identity"

	"github.com/gofiber/fiber/v2"
)

// 🟢 POST /api/v1/events/:id/transactions
func (ctrl *EventController) AddTransaction(c *fiber.Ctx) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	var req dto.TransactionRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tanggal harus berformat YYYY-MM-DD")
	}

	row, err := ctrl.Manager.AddTransaction(c.UserContext(), identity.FromCtx(c), eventID, in)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Transaksi berhasil ditambahkan", dto.ToTransactionResponse(row))
}

// 🟡 PUT /api/v1/events/:id/transactions/:transId
func (ctrl *EventController) UpdateTransaction(c *fiber.Ctx) error {
	eventID, ok1 := paramID(c, "id")
	transID, ok2 := paramID(c, "transId")
	if !ok1 || !ok2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.TransactionRequest
	if ok, resp := ctrl.bind(c, &req); !ok {
		return resp
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tanggal harus berformat YYYY-MM-DD")
	}

	row, err := ctrl.Manager.UpdateTransaction(c.UserContext(), identity.FromCtx(c), eventID, transID, in)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, "Transaksi berhasil diperbarui", dto.ToTransactionResponse(row))
}

// 🔴 DELETE /api/v1/events/:id/transactions/:transId
func (ctrl *EventController) DeleteTransaction(c *fiber.Ctx) error {
	eventID, ok1 := paramID(c, "id")
	transID, ok2 := paramID(c, "transId")
	if !ok1 || !ok2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.Manager.DeleteTransaction(c.UserContext(), identity.FromCtx(c), eventID, transID); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Transaksi berhasil dihapus", nil)
}
