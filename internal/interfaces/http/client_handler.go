package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/pkg/logger"
)

// ClientHandler maneja las peticiones HTTP de la agenda de clientes
// (protegido por RequireSession).
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	log *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes (id descendente)
// @Tags         clients
// @Produce      json
// @Success      200  {array}   dto.ClientResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener un cliente
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "id del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	client, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		h.log.Error().Err(err).Msg("obtener cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(client)
}

// Create godoc
// @Summary      Crear un cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "campos del cliente"
// @Success      200   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			// Todos los mensajes acumulados, no solo el primero.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
		}
		h.log.Error().Err(err).Msg("crear cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.CreatedResponse{ID: id})
}

// Update godoc
// @Summary      Actualizar parcialmente un cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "id del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.UpdatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Un id no numérico se comporta como inexistente: la validación corre
	// igual y el update afecta 0 filas.
	id, _ := parseID(c)
	updated, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
		}
		h.log.Error().Err(err).Msg("actualizar cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.UpdatedResponse{Updated: updated})
}

// Delete godoc
// @Summary      Eliminar un cliente
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "id del cliente"
// @Success      200  {object}  dto.DeletedResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, _ := parseID(c)
	deleted, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Msg("eliminar cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.DeletedResponse{Deleted: deleted})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
