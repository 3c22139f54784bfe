package usecase

import (
	"context"
	"strings"

	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"github.com/tu-usuario/clientes-api/internal/domain/validation"
)

// ClientUseCase casos de uso CRUD de la agenda de clientes. La validación
// corre siempre antes de tocar el repositorio.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List devuelve todos los clientes, id descendente.
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente o domain.ErrNotFound.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// Create valida el payload, normaliza (trim de name, status a {active,
// inactive}, opcionales vacíos a NULL) e inserta. Devuelve el id asignado o
// un *domain.ValidationError con todos los mensajes.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (int64, error) {
	errs := validation.ValidateCreate(validation.ClientInput{
		Name:    &in.Name,
		Email:   &in.Email,
		Phone:   &in.Phone,
		Address: &in.Address,
		Status:  &in.Status,
	})
	if err := domain.NewValidationError(errs); err != nil {
		return 0, err
	}
	client := &entity.Client{
		Name:    strings.TrimSpace(in.Name),
		Email:   optional(in.Email),
		Phone:   optional(in.Phone),
		Address: optional(in.Address),
		Status:  validation.NormalizeStatus(in.Status),
	}
	return uc.repo.Create(ctx, client)
}

// Update valida solo los campos presentes y aplica el patch con semántica
// de coalesce-con-existente. Devuelve las filas afectadas (0 si el id no
// existe; no es un error en esta capa).
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (int64, error) {
	errs := validation.ValidateUpdate(validation.ClientInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Status:  in.Status,
	})
	if err := domain.NewValidationError(errs); err != nil {
		return 0, err
	}
	patch := entity.ClientPatch{}
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		patch.Name = &trimmed
	}
	// Un opcional presente pero vacío equivale a ausente: nunca anula el
	// valor almacenado.
	if in.Email != nil {
		patch.Email = optional(*in.Email)
	}
	if in.Phone != nil {
		patch.Phone = optional(*in.Phone)
	}
	if in.Address != nil {
		patch.Address = optional(*in.Address)
	}
	if in.Status != nil {
		normalized := validation.NormalizeStatus(*in.Status)
		patch.Status = &normalized
	}
	return uc.repo.Update(ctx, id, patch)
}

// Delete elimina por id y devuelve las filas afectadas (0 si no existía).
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// optional convierte "" en nil (NULL en el store).
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
