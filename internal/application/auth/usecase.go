// Package auth contiene el estado de sesión y los casos de uso de
// autenticación: login, logout, sesión actual y demo login.
package auth

import (
	"context"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación sobre el UserRepository y el
// SessionStore.
type AuthUseCase struct {
	users      repository.UserRepository
	sessions   *SessionStore
	adminEmail string
}

// NewAuthUseCase construye el caso de uso. adminEmail es la cuenta que usa
// el demo login.
func NewAuthUseCase(users repository.UserRepository, sessions *SessionStore, adminEmail string) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, adminEmail: adminEmail}
}

// Login verifica email/password y abre una sesión. Usuario inexistente y
// password errónea devuelven el mismo ErrInvalidCredentials: la respuesta no
// debe revelar si el email existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, string, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	token := uc.sessions.Create(user.ID)
	return &dto.SessionResponse{Email: user.Email}, token, nil
}

// DemoLogin abre una sesión para la cuenta admin configurada sin pedir
// password. Falla si esa cuenta no existe en el store.
func (uc *AuthUseCase) DemoLogin(ctx context.Context) (*dto.SessionResponse, string, error) {
	user, err := uc.users.GetByEmail(ctx, uc.adminEmail)
	if err != nil {
		return nil, "", fmt.Errorf("buscar admin: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}
	token := uc.sessions.Create(user.ID)
	return &dto.SessionResponse{Email: user.Email, Demo: true}, token, nil
}

// Logout destruye la sesión del token; es idempotente.
func (uc *AuthUseCase) Logout(token string) {
	uc.sessions.Destroy(token)
}

// ResolveSession resuelve un token de cookie a un userID si la sesión sigue
// viva. Es la comprobación que corre el middleware antes de cualquier
// validación o acceso a storage.
func (uc *AuthUseCase) ResolveSession(token string) (int64, bool) {
	return uc.sessions.Resolve(token)
}

// CurrentUser devuelve la cuenta de la sesión activa (GET /me). Si el
// usuario ya no existe en el store se reporta como no autorizado.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID int64) (*dto.SessionResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.SessionResponse{Email: user.Email}, nil
}
