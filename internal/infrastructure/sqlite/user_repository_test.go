package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/sqlite"
)

func TestUserRepo_CreateYGet(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewUserRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, "admin@local", "$2a$12$hash")
	require.NoError(t, err)
	require.Positive(t, id)

	byEmail, err := r.GetByEmail(ctx, "admin@local")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "$2a$12$hash", byEmail.PasswordHash)
	assert.NotEmpty(t, byEmail.CreatedAt)

	byID, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "admin@local", byID.Email)
}

func TestUserRepo_Get_Inexistente(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewUserRepository(db)
	ctx := context.Background()

	byEmail, err := r.GetByEmail(ctx, "nadie@local")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := r.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewUserRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, "admin@local", "h1")
	require.NoError(t, err)

	_, err = r.Create(ctx, "admin@local", "h2")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
