package bootstrap_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-api/internal/application/bootstrap"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/sqlite"
	"golang.org/x/crypto/bcrypt"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.EnsureSchema(ctx, db))
	return db
}

func TestSeedAdmin_CreaYEsIdempotente(t *testing.T) {
	db := setupDB(t)
	users := sqlite.NewUserRepository(db)
	ctx := context.Background()

	result, err := bootstrap.SeedAdmin(ctx, users, "admin@local", "changeme")
	require.NoError(t, err)
	assert.Equal(t, bootstrap.ResultSeeded, result)

	// Segunda corrida con el mismo email: no-op.
	result, err = bootstrap.SeedAdmin(ctx, users, "admin@local", "otra-password")
	require.NoError(t, err)
	assert.Equal(t, bootstrap.ResultExists, result)

	// Exactamente una fila para ese email.
	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM users WHERE email = ?`, "admin@local",
	).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSeedAdmin_HashVerificaConBcrypt(t *testing.T) {
	db := setupDB(t)
	users := sqlite.NewUserRepository(db)
	ctx := context.Background()

	_, err := bootstrap.SeedAdmin(ctx, users, "admin@local", "changeme")
	require.NoError(t, err)

	u, err := users.GetByEmail(ctx, "admin@local")
	require.NoError(t, err)
	require.NotNil(t, u)

	// El plano nunca se persiste; el hash verifica contra la password.
	assert.NotEqual(t, "changeme", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("changeme")))
}
