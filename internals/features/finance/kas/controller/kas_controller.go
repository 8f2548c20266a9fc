package controller

import (
	"strconv"
	"strings"

	"halodkm_backend/internals/features/finance/balance"
	"halodkm_backend/internals/features/finance/kas/dto"
	"halodkm_backend/internals/features/finance/kas/service"
	helper "halodkm_backend/internals/helpers"
	"halodkm_backend/internals/helpers/identity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type KasController struct {
	Service  *service.Service
	Validate *validator.Validate
}

func NewKasController(svc *service.Service) *KasController {
	return &KasController{Service: svc, Validate: helper.NewValidator()}
}

// 🟢 GET /api/v1/kas?start_date=&end_date=&type=&page=&per_page=
func (ctrl *KasController) GetKas(c *fiber.Ctx) error {
	var f service.Filter
	var err error
	if f.StartDate, err = helper.ParseYMDPtr(c.Query("start_date")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date harus berformat YYYY-MM-DD")
	}
	if f.EndDate, err = helper.ParseYMDPtr(c.Query("end_date")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date harus berformat YYYY-MM-DD")
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		f.Type = balance.Direction(strings.ToLower(t))
	}

	p := helper.ResolvePaging(c, 50, 200)
	res, err := ctrl.Service.List(c.UserContext(), f, p.Limit, p.Offset)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	data := dto.KasListResponse{
		Data:    dto.ToKasResponseList(res.Rows),
		Summary: res.Summary,
	}
	return helper.JsonList(c, "Data kas masjid berhasil diambil", data, helper.BuildPagination(res.Total, p, len(res.Rows)))
}

// 🟢 POST /api/v1/kas
func (ctrl *KasController) CreateKas(c *fiber.Ctx) error {
	in, resp := ctrl.parse(c)
	if in == nil {
		return resp
	}
	row, err := ctrl.Service.Create(c.UserContext(), identity.FromCtx(c), *in)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Transaksi kas berhasil ditambahkan", dto.ToKasResponse(row))
}

// 🟡 PUT /api/v1/kas/:id
func (ctrl *KasController) UpdateKas(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}
	in, resp := ctrl.parse(c)
	if in == nil {
		return resp
	}
	row, err := ctrl.Service.Update(c.UserContext(), identity.FromCtx(c), id, *in)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, "Transaksi kas berhasil diupdate", dto.ToKasResponse(row))
}

// 🔴 DELETE /api/v1/kas/:id
func (ctrl *KasController) DeleteKas(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}
	if err := ctrl.Service.Delete(c.UserContext(), identity.FromCtx(c), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Transaksi kas berhasil dihapus", nil)
}

// parse: body → service.Input. Kalau gagal, input nil dan response error sudah ditulis.
func (ctrl *KasController) parse(c *fiber.Ctx) (*service.Input, error) {
	var req dto.KasRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	tgl, err := helper.ParseYMD(req.Tanggal)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "tanggal harus berformat YYYY-MM-DD")
	}
	return &service.Input{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Tanggal:     tgl,
	}, nil
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id, err == nil && id > 0
}
