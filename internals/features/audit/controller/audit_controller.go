package controller

import (
	"log"
	"strconv"
	"strings"

	"halodkm_backend/internals/features/audit/model"
	helper "halodkm_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db}
}

// 🟢 GET /api/v1/audit?user_id=&limit=
func (ctrl *AuditController) GetAuditLogs(c *fiber.Ctx) error {
	limit := helper.NewPaging(1, atoiOr(0, c.Query("limit")), 100, 500).Limit

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AuditLogModel{})
	if s := strings.TrimSpace(c.Query("user_id")); s != "" {
		uid, err := strconv.ParseInt(s, 10, 64)
		if err != nil || uid <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		q = q.Where("user_id = ?", uid)
	}

	var logs []model.AuditLogModel
	if err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil audit log: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil audit log")
	}
	return helper.JsonOK(c, "Audit log berhasil diambil", logs)
}

func atoiOr(def int, s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
