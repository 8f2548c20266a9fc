// internals/middlewares/auth/gate.go
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	helper "halodkm_backend/internals/helpers"
	"halodkm_backend/internals/helpers/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var errNoCredentials = errors.New("kredensial tidak ditemukan")

// Resolver mengubah request menjadi identitas pemanggil yang sudah terverifikasi.
type Resolver interface {
	Resolve(c *fiber.Ctx) (identity.Caller, error)
}

/* ======== JWT (HS256) ======== */

type JWTResolver struct {
	Secret string
	Skew   time.Duration
}

func (r JWTResolver) Resolve(c *fiber.Ctx) (identity.Caller, error) {
	tokenString, err := extractBearerToken(c)
	if err != nil {
		return identity.Caller{}, err
	}
	if r.Secret == "" {
		return identity.Caller{}, fmt.Errorf("JWT_SECRET kosong")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{
		SkipClaimsValidation: true,
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
	}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(r.Secret), nil
	}); err != nil {
		return identity.Caller{}, fmt.Errorf("token tidak valid: %w", err)
	}

	skew := r.Skew
	if skew == 0 {
		skew = 30 * time.Second
	}
	if err := validateTokenExpiry(claims, skew); err != nil {
		return identity.Caller{}, err
	}

	id, err := extractUserID(claims)
	if err != nil {
		return identity.Caller{}, err
	}
	return identity.Caller{ID: id, Role: extractRole(claims)}, nil
}

/* ======== Legacy x-user-info header ======== */

// HeaderResolver mempercayai header x-user-info apa adanya (tanpa tanda tangan).
// Hanya untuk kompatibilitas frontend lama; aktif via AUTH_ALLOW_USER_INFO_HEADER.
type HeaderResolver struct{}

const HeaderUserInfo = "x-user-info"

func (HeaderResolver) Resolve(c *fiber.Ctx) (identity.Caller, error) {
	raw := strings.TrimSpace(c.Get(HeaderUserInfo))
	if raw == "" {
		return identity.Caller{}, errNoCredentials
	}
	var payload struct {
		ID   json.Number `json:"id"`
		Role string      `json:"role"`
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return identity.Caller{}, fmt.Errorf("header %s tidak valid", HeaderUserInfo)
	}
	id, err := payload.ID.Int64()
	if err != nil || id <= 0 {
		return identity.Caller{}, fmt.Errorf("id pada header %s tidak valid", HeaderUserInfo)
	}
	return identity.Caller{ID: id, Role: strings.ToLower(strings.TrimSpace(payload.Role))}, nil
}

/* ======== Chain ======== */

// ChainResolver mencoba resolver berurutan; resolver yang tidak menemukan
// kredensial dilewati, error lain langsung dikembalikan.
type ChainResolver []Resolver

func (ch ChainResolver) Resolve(c *fiber.Ctx) (identity.Caller, error) {
	for _, r := range ch {
		caller, err := r.Resolve(c)
		if errors.Is(err, errNoCredentials) {
			continue
		}
		return caller, err
	}
	return identity.Caller{}, errNoCredentials
}

/* ======== Middleware ======== */

// AuthGate: 401 kalau identitas tidak bisa ditentukan; kalau ada, simpan ke locals.
func AuthGate(r Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := r.Resolve(c)
		if err != nil {
			log.Printf("[WARN] AuthGate %s %s: %v", c.Method(), c.OriginalURL(), err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Login diperlukan")
		}
		if !caller.Valid() {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: identitas tidak lengkap")
		}
		identity.Store(c, caller)
		return c.Next()
	}
}
