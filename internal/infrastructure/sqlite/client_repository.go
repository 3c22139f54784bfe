package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre SQLite.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db *sql.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create persiste un nuevo cliente y devuelve el id asignado por el store.
// created_at y updated_at quedan en manos de los defaults del schema.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (int64, error) {
	query := `
		INSERT INTO clients (name, email, phone, address, status)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		client.Name, client.Email, client.Phone, client.Address, client.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert client: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetByID obtiene un cliente por id. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `
		SELECT id, name, email, phone, address, status, created_at, updated_at
		FROM clients WHERE id = ?`
	var c entity.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por id descendente.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT id, name, email, phone, address, status, created_at, updated_at
		FROM clients ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update aplica un patch parcial: cada campo nil conserva el valor almacenado
// (COALESCE con el existente) y updated_at se refresca siempre. Devuelve las
// filas afectadas; 0 si el id no existe, sin error.
func (r *ClientRepo) Update(ctx context.Context, id int64, patch entity.ClientPatch) (int64, error) {
	query := `
		UPDATE clients SET
			name    = COALESCE(?, name),
			email   = COALESCE(?, email),
			phone   = COALESCE(?, phone),
			address = COALESCE(?, address),
			status  = COALESCE(?, status),
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		patch.Name, patch.Email, patch.Phone, patch.Address, patch.Status, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update client: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

// Delete elimina un cliente por id. Devuelve las filas afectadas.
func (r *ClientRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete client: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}
