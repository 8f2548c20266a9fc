package middlewares

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	helper "halodkm_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); !ok {
			t.Error("user context has no deadline")
		}
		return c.SendString(c.Locals(LocRequestID).(string))
	})

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated", "", false},
		{"client uuid kept", "4b1f1a7e-3c2d-4f7a-9a55-6f0c2e9d1b2a", true},
		{"garbage replaced", "bukan-uuid", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			got := resp.Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("header %q is not a uuid", got)
			}
			if tt.keep && got != tt.incoming {
				t.Fatalf("got %q, want %q", got, tt.incoming)
			}
			if !tt.keep && got == tt.incoming {
				t.Fatalf("incoming id %q should have been replaced", got)
			}
		})
	}
}

func TestRateLimiterUsesEnvelope(t *testing.T) {
	app := fiber.New()
	app.Use(newLimiter(1, time.Minute, "pelan-pelan"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	first, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if first.StatusCode != 200 {
		t.Fatalf("first status = %d", first.StatusCode)
	}

	second, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer second.Body.Close()
	if second.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("second status = %d", second.StatusCode)
	}
	var body helper.ErrorResponse
	if err := json.NewDecoder(second.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Success || body.ErrorCode != "TOO_MANY_REQUESTS" || body.Message != "pelan-pelan" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRecoveryHidesPanic(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(RecoveryMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { panic("rahasia internal") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body helper.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Message == "rahasia internal" || body.ErrorCode != "INTERNAL_ERROR" {
		t.Fatalf("body = %+v", body)
	}
}

func TestNormalizeOrigins(t *testing.T) {
	tests := map[string]string{
		"":                              "*",
		"*":                             "*",
		"https://a.id/, https://b.id ,": "https://a.id, https://b.id",
		" http://localhost:5173 ":       "http://localhost:5173",
	}
	for in, want := range tests {
		if got := normalizeOrigins(in); got != want {
			t.Errorf("normalizeOrigins(%q) = %q, want %q", in, got, want)
		}
	}
}
