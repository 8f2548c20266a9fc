// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := strings.TrimSpace(c.Cookies("access_token")); cookieTok != "" {
			return cookieTok, nil
		}
		return "", errNoCredentials
	}

	// toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("format token tidak valid")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("token kosong")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token tidak memiliki exp")
	}
	expUnix, err := toInt64(expVal)
	if err != nil {
		return fmt.Errorf("format exp tidak valid")
	}
	expTime := time.Unix(expUnix, 0).UTC()
	if time.Now().UTC().After(expTime.Add(skew)) {
		return fmt.Errorf("token kedaluwarsa pada %v", expTime)
	}
	return nil
}

// extractUserID membaca klaim "id" lalu "sub".
func extractUserID(claims jwt.MapClaims) (int64, error) {
	for _, key := range []string{"id", "sub"} {
		if raw, ok := claims[key]; ok {
			id, err := toInt64(raw)
			if err != nil || id <= 0 {
				return 0, fmt.Errorf("klaim %s tidak valid", key)
			}
			return id, nil
		}
	}
	return 0, fmt.Errorf("user id tidak ada di token")
}

func extractRole(claims jwt.MapClaims) string {
	role, _ := claims["role"].(string)
	return strings.ToLower(strings.TrimSpace(role))
}

/* ======== Helpers ======== */

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("bukan bilangan bulat")
		}
		return int64(t), nil
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(t), 10, 64)
	default:
		return 0, fmt.Errorf("tipe %T tidak didukung", v)
	}
}
