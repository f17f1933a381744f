// file: internals/middlewares/auth_school/auth_jwt.go
package auth_school

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	LocalsSchoolID = "school_id"
	LocalsUserID   = "user_id"
)

// OptionalJWT mengekstrak school_id/user_id dari Bearer token bila ada.
// Tidak pernah menolak request: belum ada lapisan auth wajib di produk ini,
// klaim hanya dipakai sebagai sumber tenant/user yang lebih dipercaya
// daripada body (dipakai endpoint AI generation).
func OptionalJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authz, "Bearer ") {
			return c.Next()
		}
		raw := strings.TrimPrefix(authz, "Bearer ")

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return c.Next() // token rusak diabaikan, bukan ditolak
		}

		if v, ok := claims[LocalsSchoolID].(string); ok && v != "" {
			c.Locals(LocalsSchoolID, v)
		}
		if v, ok := claims[LocalsUserID].(string); ok && v != "" {
			c.Locals(LocalsUserID, v)
		}
		return c.Next()
	}
}
