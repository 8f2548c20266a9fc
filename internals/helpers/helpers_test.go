package helper

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"halodkm_backend/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name              string
		page, perPage     int
		wantPage, wantPer int
		wantOffset        int
	}{
		{"defaults", 0, 0, 1, 20, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"capped", 3, 1000, 3, 100, 200},
		{"negative page", -4, 5, 1, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaging(tt.page, tt.perPage, 20, 100)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPer || p.Offset != tt.wantOffset {
				t.Fatalf("got %+v", p)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, NewPaging(2, 20, 20, 100), 20)
	if p.TotalPages != 3 || !p.HasNext || !p.HasPrev || p.Count != 20 {
		t.Fatalf("got %+v", p)
	}
	empty := BuildPagination(0, NewPaging(1, 20, 20, 100), 0)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Fatalf("got %+v", empty)
	}
}

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD(" 2025-03-01 ")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, err := ParseYMD("01/03/2025"); err == nil {
		t.Fatal("expected error for invalid layout")
	}
	ptr, err := ParseYMDPtr("")
	if err != nil || ptr != nil {
		t.Fatalf("empty string: got %v, %v", ptr, err)
	}
}

func TestFromAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"conflict", apperror.Conflictf("event sudah selesai"), 409, "CONFLICT"},
		{"invalid state", apperror.New(apperror.InvalidState, "saldo negatif"), 400, "INVALID_STATE"},
		{"fiber error", fiber.NewError(fiber.StatusForbidden, "dilarang"), 403, "FORBIDDEN"},
		{"plain", errors.New("boom"), 500, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return FromAppError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Success || body.ErrorCode != tt.code {
				t.Fatalf("body = %+v", body)
			}
		})
	}
}

func TestValidationErrorUsesJSONNames(t *testing.T) {
	type req struct {
		Nama string `json:"nama" validate:"required"`
		Tipe string `json:"tipe" validate:"omitempty,oneof=penggalangan_dana distribusi"`
	}
	v := NewValidator()
	err := v.Struct(req{Tipe: "lain"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return ValidationError(c, err) })
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.ErrorCode != "VALIDATION_ERROR" {
		t.Fatalf("code = %q", body.ErrorCode)
	}
	if _, ok := body.Errors["nama"]; !ok {
		t.Fatalf("missing nama error: %+v", body.Errors)
	}
	if _, ok := body.Errors["tipe"]; !ok {
		t.Fatalf("missing tipe error: %+v", body.Errors)
	}
}
