// seed siembra la credencial del administrador fuera del ciclo del server,
// con la misma configuración (DB_PATH, ADMIN_EMAIL, ADMIN_PASSWORD).
//
// Uso: go run ./cmd/seed
// Es idempotente: si el admin ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tu-usuario/clientes-api/internal/application/bootstrap"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/sqlite"
	"github.com/tu-usuario/clientes-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir SQLite: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "crear schema: %v\n", err)
		os.Exit(1)
	}

	result, err := bootstrap.SeedAdmin(ctx, sqlite.NewUserRepository(db), cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sembrar admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %s\n", result, cfg.Admin.Email)
}
