// Package bootstrap siembra la credencial del administrador en el arranque.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Costo bcrypt para la credencial sembrada; deliberadamente por encima del
// default.
const seedBcryptCost = 12

// Resultados de SeedAdmin.
const (
	ResultExists = "admin exists"
	ResultSeeded = "seeded"
)

// SeedAdmin garantiza que exista exactamente una credencial para email:
// si ya hay fila no hace nada (ResultExists); si no, hashea password y la
// inserta (ResultSeeded). Es idempotente y debe correr antes de aceptar
// tráfico autenticado.
func SeedAdmin(ctx context.Context, users repository.UserRepository, email, password string) (string, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("buscar admin: %w", err)
	}
	if existing != nil {
		return ResultExists, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), seedBcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashear password: %w", err)
	}
	if _, err := users.Create(ctx, email, string(hash)); err != nil {
		return "", fmt.Errorf("insertar admin: %w", err)
	}
	return ResultSeeded, nil
}
