// Package auth implementa el acceso del administrador. La credencial es
// única y viene de la configuración (usuario + hash bcrypt); una sesión
// válida se representa con un JWT con rol explícito, nunca con estado
// global de proceso.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
)

// Roles de sesión.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredential credencial configurada del administrador.
type AdminCredential struct {
	Username     string
	PasswordHash string // bcrypt
}

// AuthUseCase caso de uso de login de administrador.
type AuthUseCase struct {
	admin  AdminCredential
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(admin AdminCredential, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login verifica usuario y contraseña contra la credencial configurada y
// emite un JWT con rol admin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.admin.Username == "" || uc.admin.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.admin.Username)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: RoleAdmin}, nil
}
