package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// validate instancia compartida; los tags viven en los DTOs de application/dto.
var validate = validator.New()

// parseAndValidate decodifica el body JSON en out y lo valida contra sus tags.
// Si el input no pasa, escribe el 400 y devuelve false; el handler corta ahí.
func parseAndValidate(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:   "INVALID_BODY",
			Detail: "cuerpo inválido",
		})
		return false
	}
	if err := validate.Struct(out); err != nil {
		detail := "entrada inválida"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			detail = "campo '" + verrs[0].Field() + "' no cumple la regla '" + verrs[0].Tag() + "'"
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:   "VALIDATION",
			Detail: detail,
		})
		return false
	}
	return true
}
