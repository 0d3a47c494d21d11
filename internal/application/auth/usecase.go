package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: login y resolución del usuario del token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	secret   []byte
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, secret []byte) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, secret: secret}
}

// Login verifica email/password y genera un JWT sin expiración con sub = user.ID.
// Email inexistente o password incorrecto devuelven domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !passwordMatches(user.Password, password) {
		zerolog.Ctx(ctx).Info().Str("email", email).Msg("login rechazado")
		return "", domain.ErrInvalidCredentials
	}
	return jwt.Generate(uc.secret, user.ID, user.Email)
}

// Verify valida un token Bearer. Cualquier fallo se reporta como domain.ErrInvalidToken.
func (uc *AuthUseCase) Verify(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// CurrentUser carga el usuario del sub del token. (nil, nil) si ya no existe.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, claims *jwt.Claims) (*entity.User, error) {
	if claims == nil {
		return nil, nil
	}
	return uc.userRepo.GetByID(ctx, claims.Subject)
}

// passwordMatches compara con bcrypt si lo almacenado es un hash; si no, igualdad exacta.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

func isBcryptHash(s string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
