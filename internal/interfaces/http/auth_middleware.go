package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/pkg/jwt"
)

// Locals keys para claims y usuario autenticado en Fiber.
const (
	LocalClaims = "claims"
	LocalUser   = "user"
)

// tokenVerifier lo implementa *auth.AuthUseCase.
type tokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// AuthMiddleware valida el Bearer Token JWT si viene y deja los claims en c.Locals.
// La autenticación es opcional: sin header, o con un esquema distinto de Bearer,
// el request sigue como anónimo. Un header mal formado o un token que no verifica
// responden 401 INVALID_TOKEN.
func AuthMiddleware(verifier tokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		if !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		claims, err := verifier.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// GetClaims devuelve los claims del token (nil si el request es anónimo).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

// GetUserID devuelve el sub del token; vacío si el request es anónimo.
func GetUserID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Subject
	}
	return ""
}
