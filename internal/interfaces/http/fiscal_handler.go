package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
)

// FiscalHandler importação de NFe (protegido, admin).
type FiscalHandler struct {
	uc *usecase.FiscalUseCase
}

// NewFiscalHandler constrói o handler.
func NewFiscalHandler(uc *usecase.FiscalUseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// ImportNFe godoc
// @Summary      Importar NFe (XML no corpo)
// @Tags         fiscal
// @Security     Bearer
// @Accept       application/xml
// @Produce      json
// @Success      200  {object}  dto.ImportNFeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fiscal/nfe/import [post]
func (h *FiscalHandler) ImportNFe(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "XML da NFe é obrigatório no corpo"})
	}
	out, err := h.uc.ImportNFe(c.UserContext(), GetStoreID(c), GetUserID(c), body)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
