package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// handleDomainError mapea errores de dominio a status HTTP. Es el único punto
// del pipeline que elige códigos de transporte; los fallos de storage
// responden 500 con mensaje genérico y el detalle queda en el log.
func handleDomainError(c *fiber.Ctx, err error) error {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:   "NOT_FOUND",
			Detail: notFound.Error(),
		})
	}
	var dup *domain.DuplicateError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:   "DUPLICATE",
			Detail: "ya existe un registro con ese valor único",
		})
	}
	var fk *domain.ForeignKeyError
	if errors.As(err, &fk) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:   "INVALID_REFERENCE",
			Detail: "la categoría o el fornecedor referenciado no existe",
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("operación fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:   "INTERNAL",
		Detail: "error interno, intente más tarde",
	})
}

// parseID lee el path param :id como int64 positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}
