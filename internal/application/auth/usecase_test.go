package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
	"github.com/exporthub/exporthub-api/pkg/jwt"
)

const testSecret = "test-secret-para-auth"

func buildAuthUseCase(delay time.Duration) *AuthUseCase {
	store := memory.NewSeeded()
	cfg := JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "exporthub-test"}
	return NewAuthUseCase(store.Users(), cfg, delay)
}

func TestLoginDirectoryUser(t *testing.T) {
	uc := buildAuthUseCase(0)

	res, err := uc.Login(dto.LoginRequest{Email: "admin@exporthub.com", Password: "exporthub123"})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotEmpty(t, res.Token)

	assert.Equal(t, 1, res.User.ID)
	assert.Equal(t, "Admin Sistem", res.User.Name)
	assert.Equal(t, entity.RoleAdmin, res.User.Role)

	userID, role, err := jwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLoginDirectoryUserWrongPassword(t *testing.T) {
	uc := buildAuthUseCase(0)

	res, err := uc.Login(dto.LoginRequest{Email: "budi@exporthub.com", Password: "incorrecta"})
	require.NoError(t, err)

	// Contraseña incorrecta se reporta como bandera, nunca como error.
	assert.False(t, res.Success)
	assert.Empty(t, res.Token)
}

func TestLoginUnknownEmailGetsDemoSession(t *testing.T) {
	uc := buildAuthUseCase(0)

	res, err := uc.Login(dto.LoginRequest{Email: "visitante@example.com", Password: "cualquiera"})
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, 0, res.User.ID)
	assert.Equal(t, "Demo User", res.User.Name)
	assert.Equal(t, "visitante@example.com", res.User.Email)
	assert.Equal(t, entity.RoleSuperAdmin, res.User.Role)

	_, role, err := jwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, role)
}

func TestLoginCredencialesVacias(t *testing.T) {
	uc := buildAuthUseCase(0)

	_, err := uc.Login(dto.LoginRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginAppliesSimulatedDelay(t *testing.T) {
	delay := 50 * time.Millisecond
	uc := buildAuthUseCase(delay)

	start := time.Now()
	_, err := uc.Login(dto.LoginRequest{Email: "visitante@example.com", Password: "x"})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), delay)
}
