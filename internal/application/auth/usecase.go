// Package auth implementa el login de demostración. El flujo conserva el
// contrato del sistema de origen: latencia simulada fija, y cualquier email
// fuera del directorio recibe una sesión super_admin de demostración en lugar
// de un rechazo. Solo los emails del directorio exigen contraseña válida.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
	"github.com/exporthub/exporthub-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// demoUser sesión emitida para emails fuera del directorio.
var demoUser = dto.SessionUser{
	ID:    0,
	Name:  "Demo User",
	Email: "",
	Role:  entity.RoleSuperAdmin,
}

// AuthUseCase caso de uso de autenticación simulada.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	delay    time.Duration
}

// NewAuthUseCase construye el caso de uso. delay es la latencia simulada de
// red por intento de login.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, delay time.Duration) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, delay: delay}
}

// Login espera la latencia simulada y resuelve la sesión:
//   - email del directorio + contraseña correcta: sesión con el rol del usuario;
//   - email del directorio + contraseña incorrecta: Success=false (nunca error);
//   - email desconocido: sesión super_admin de demostración.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	time.Sleep(uc.delay)

	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}

	session := demoUser
	session.Email = in.Email
	if user != nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
			return &dto.LoginResponse{Success: false}, nil
		}
		session = dto.SessionUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, session.ID, session.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Success: true, Token: token, User: session}, nil
}
