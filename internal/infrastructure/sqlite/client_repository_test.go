package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/sqlite"
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

func strPtr(s string) *string { return &s }

func TestEnsureSchema_Idempotente(t *testing.T) {
	db := setupDB(t)
	// Correr el schema otra vez sobre la misma base no debe fallar.
	require.NoError(t, sqlite.EnsureSchema(context.Background(), db))
}

func TestClientRepo_CreateYGetByID_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &entity.Client{
		Name:    "Alice",
		Email:   strPtr("a@b.com"),
		Phone:   strPtr("555-1234"),
		Address: strPtr("1 Main St"),
		Status:  entity.StatusActive,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, "a@b.com", *got.Email)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "555-1234", *got.Phone)
	require.NotNil(t, got.Address)
	assert.Equal(t, "1 Main St", *got.Address)
	assert.Equal(t, "active", got.Status)
	assert.NotEmpty(t, got.CreatedAt)
	assert.NotEmpty(t, got.UpdatedAt)
}

func TestClientRepo_Create_OpcionalesNulos(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &entity.Client{Name: "Bob", Status: entity.StatusActive})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.Phone)
	assert.Nil(t, got.Address)
}

func TestClientRepo_GetByID_Inexistente(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)

	got, err := r.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got, "id inexistente devuelve nil sin error")
}

func TestClientRepo_List_OrdenIDDescendente(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)
	ctx := context.Background()

	for _, name := range []string{"primero", "segundo", "tercero"} {
		_, err := r.Create(ctx, &entity.Client{Name: name, Status: entity.StatusActive})
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "tercero", list[0].Name)
	assert.Equal(t, "segundo", list[1].Name)
	assert.Equal(t, "primero", list[2].Name)
	assert.Greater(t, list[0].ID, list[1].ID)
}

func TestClientRepo_Update_ParcialConservaElResto(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &entity.Client{
		Name:    "Alice",
		Email:   strPtr("a@b.com"),
		Phone:   strPtr("555-1234"),
		Address: strPtr("1 Main St"),
		Status:  entity.StatusActive,
	})
	require.NoError(t, err)

	before, err := r.GetByID(ctx, id)
	require.NoError(t, err)

	// Precisión de milisegundos en updated_at: un sleep corto basta para
	// observar el refresco.
	time.Sleep(20 * time.Millisecond)

	affected, err := r.Update(ctx, id, entity.ClientPatch{Status: strPtr("inactive")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	after, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "inactive", after.Status)
	assert.Equal(t, "Alice", after.Name)
	assert.Equal(t, "a@b.com", *after.Email)
	assert.Equal(t, "555-1234", *after.Phone)
	assert.Equal(t, "1 Main St", *after.Address)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt > before.UpdatedAt,
		"updated_at debe avanzar: antes=%s después=%s", before.UpdatedAt, after.UpdatedAt)
}

func TestClientRepo_Update_Inexistente_CeroFilas(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)

	affected, err := r.Update(context.Background(), 999, entity.ClientPatch{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestClientRepo_Delete(t *testing.T) {
	db := setupDB(t)
	r := sqlite.NewClientRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, &entity.Client{Name: "Alice", Status: entity.StatusActive})
	require.NoError(t, err)

	deleted, err := r.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Borrar un id inexistente no es error, solo 0 filas.
	deleted, err = r.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
