package route

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"halodkm_backend/internals/features/events/eventstest"
	"halodkm_backend/internals/features/events/service"
	helper "halodkm_backend/internals/helpers"
	authMiddleware "halodkm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	adminHeader  = `{"id": 1, "role": "admin"}`
	jamaahHeader = `{"id": 2, "role": "jamaah"}`
)

func newTestApp(t *testing.T) (*fiber.App, *eventstest.Store) {
	t.Helper()
	store := eventstest.New()
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	api := app.Group("/api/v1", authMiddleware.AuthGate(authMiddleware.HeaderResolver{}))
	Register(api, service.NewManager(store, &eventstest.Recorder{}))
	return app, store
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func call(t *testing.T, app *fiber.App, method, path, user, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(authMiddleware.HeaderUserInfo, user)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func TestEventCompletionOverHTTP(t *testing.T) {
	app, store := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/v1/events", adminHeader,
		`{"nama":"Qurban 1446","tanggal_mulai":"2025-06-01"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create: %d %+v", status, env)
	}
	var ev struct {
		ID     int64  `json:"id"`
		Tipe   string `json:"tipe"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Tipe != "penggalangan_dana" || ev.Status != "aktif" {
		t.Fatalf("event = %+v", ev)
	}
	base := "/api/v1/events/" + itoa(ev.ID)

	for _, body := range []string{
		`{"type":"masuk","amount":1000,"description":"donasi","tanggal":"2025-06-02"}`,
		`{"type":"keluar","amount":"300","description":"beli hewan","tanggal":"2025-06-03"}`,
	} {
		if status, env := call(t, app, http.MethodPost, base+"/transactions", adminHeader, body); status != fiber.StatusCreated {
			t.Fatalf("add transaction: %d %+v", status, env)
		}
	}

	status, env = call(t, app, http.MethodPost, base+"/complete", adminHeader, "")
	if status != fiber.StatusOK {
		t.Fatalf("complete: %d %+v", status, env)
	}
	var done struct {
		TransferredAmount decimal.Decimal `json:"transferred_amount"`
	}
	if err := json.Unmarshal(env.Data, &done); err != nil {
		t.Fatal(err)
	}
	if !done.TransferredAmount.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("transferred = %s", done.TransferredAmount)
	}
	if !strings.Contains(env.Message, "Rp 700") {
		t.Fatalf("message = %q", env.Message)
	}
	if len(store.KasEntries()) != 1 {
		t.Fatal("expected one kas entry")
	}

	status, env = call(t, app, http.MethodPost, base+"/complete", adminHeader, "")
	if status != fiber.StatusConflict || env.ErrorCode != "CONFLICT" {
		t.Fatalf("second complete: %d %+v", status, env)
	}

	status, env = call(t, app, http.MethodPost, base+"/transactions", adminHeader,
		`{"type":"masuk","amount":5,"description":"telat","tanggal":"2025-06-04"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("add after completion: %d %+v", status, env)
	}

	status, env = call(t, app, http.MethodGet, base, jamaahHeader, "")
	if status != fiber.StatusOK {
		t.Fatalf("detail: %d %+v", status, env)
	}
	var detail struct {
		Event struct {
			Status         string  `json:"status"`
			TanggalSelesai *string `json:"tanggal_selesai"`
		} `json:"event"`
		Transactions []json.RawMessage `json:"transactions"`
		Summary      struct {
			Saldo decimal.Decimal `json:"saldo"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatal(err)
	}
	if detail.Event.Status != "selesai" || detail.Event.TanggalSelesai == nil || len(detail.Transactions) != 2 ||
		!detail.Summary.Saldo.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("detail = %+v", detail)
	}
}

func TestNegativeBalanceOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	_, env := call(t, app, http.MethodPost, "/api/v1/events", adminHeader,
		`{"nama":"Santunan","tipe":"distribusi","tanggal_mulai":"2025-06-01"}`)
	var ev struct{ ID int64 }
	_ = json.Unmarshal(env.Data, &ev)
	base := "/api/v1/events/" + itoa(ev.ID)

	call(t, app, http.MethodPost, base+"/transactions", adminHeader, `{"type":"masuk","amount":100,"description":"a","tanggal":"2025-06-02"}`)
	call(t, app, http.MethodPost, base+"/transactions", adminHeader, `{"type":"keluar","amount":300,"description":"b","tanggal":"2025-06-02"}`)

	status, env := call(t, app, http.MethodPost, base+"/complete", adminHeader, "")
	if status != fiber.StatusBadRequest || env.ErrorCode != "INVALID_STATE" {
		t.Fatalf("complete: %d %+v", status, env)
	}

	status, env = call(t, app, http.MethodDelete, base, adminHeader, "")
	if status != fiber.StatusConflict {
		t.Fatalf("delete with transactions: %d %+v", status, env)
	}
}

func TestEventAccessControl(t *testing.T) {
	app, _ := newTestApp(t)
	tests := []struct {
		name   string
		method string
		path   string
		user   string
		body   string
		status int
		code   string
	}{
		{"no identity", http.MethodGet, "/api/v1/events", "", "", 401, "UNAUTHORIZED"},
		{"jamaah can list", http.MethodGet, "/api/v1/events", jamaahHeader, "", 200, ""},
		{"jamaah cannot create", http.MethodPost, "/api/v1/events", jamaahHeader, `{"nama":"x","tanggal_mulai":"2025-01-01"}`, 403, "FORBIDDEN"},
		{"validation", http.MethodPost, "/api/v1/events", adminHeader, `{"tipe":"lelang"}`, 400, "VALIDATION_ERROR"},
		{"bad date", http.MethodPost, "/api/v1/events", adminHeader, `{"nama":"x","tanggal_mulai":"01-01-2025"}`, 400, "BAD_REQUEST"},
		{"bad status filter", http.MethodGet, "/api/v1/events?status=batal", adminHeader, "", 400, "INVALID_INPUT"},
		{"unknown event", http.MethodGet, "/api/v1/events/404", adminHeader, "", 404, "NOT_FOUND"},
		{"bad id", http.MethodGet, "/api/v1/events/abc", adminHeader, "", 400, "BAD_REQUEST"},
		{"zero amount", http.MethodPost, "/api/v1/events/1/transactions", adminHeader, `{"type":"masuk","amount":0,"description":"x","tanggal":"2025-01-01"}`, 400, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, app, tt.method, tt.path, tt.user, tt.body)
			if status != tt.status {
				t.Fatalf("status = %d, want %d (%+v)", status, tt.status, env)
			}
			if tt.code != "" && env.ErrorCode != tt.code {
				t.Fatalf("error_code = %q, want %q", env.ErrorCode, tt.code)
			}
		})
	}
}

func TestRecipientRoutes(t *testing.T) {
	app, _ := newTestApp(t)
	_, env := call(t, app, http.MethodPost, "/api/v1/events", adminHeader, `{"nama":"Sembako","tanggal_mulai":"2025-06-01"}`)
	var ev struct{ ID int64 }
	_ = json.Unmarshal(env.Data, &ev)
	base := "/api/v1/events/" + itoa(ev.ID)

	status, env := call(t, app, http.MethodPost, base+"/recipients", adminHeader, `{"nama":"Ibu Aminah","jumlah":"2 paket"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("add recipient: %d %+v", status, env)
	}
	var r struct{ ID int64 }
	_ = json.Unmarshal(env.Data, &r)

	status, env = call(t, app, http.MethodGet, base+"/recipients", jamaahHeader, "")
	var list []map[string]any
	_ = json.Unmarshal(env.Data, &list)
	if status != 200 || len(list) != 1 || list[0]["nama"] != "Ibu Aminah" {
		t.Fatalf("list: %d %v", status, list)
	}

	if status, _ := call(t, app, http.MethodDelete, base+"/recipients/"+itoa(r.ID), jamaahHeader, ""); status != 403 {
		t.Fatalf("jamaah delete: %d", status)
	}
	if status, _ := call(t, app, http.MethodDelete, base+"/recipients/"+itoa(r.ID), adminHeader, ""); status != 200 {
		t.Fatalf("admin delete: %d", status)
	}

	if status, env := call(t, app, http.MethodPost, base+"/committee", adminHeader, `{"nama":"Pak Harun","jabatan":"Ketua"}`); status != 201 {
		t.Fatalf("add committee: %d %+v", status, env)
	}
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
