package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/pkg/jwt"
)

// userResolver es el contrato mínimo que necesita el middleware para cargar el usuario.
// Lo implementa *auth.AuthUseCase.
type userResolver interface {
	CurrentUser(ctx context.Context, claims *jwt.Claims) (*entity.User, error)
}

// LoadUser carga el usuario del token y lo deja en c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - Sin claims o con un sub que ya no existe: el request sigue como anónimo.
//   - 503 Service Unavailable: fallo de infraestructura al consultar el usuario.
func LoadUser(users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Next()
		}
		user, err := users.CurrentUser(c.UserContext(), claims)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Str("user_id", claims.Subject).Msg("cargar usuario del token")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "USER_LOOKUP_FAILED",
				Message: "no se pudo verificar el usuario, intente más tarde",
			})
		}
		if user != nil {
			c.Locals(LocalUser, user)
		}
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado (nil si es anónimo).
func GetUser(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(LocalUser).(*entity.User)
	return user
}
