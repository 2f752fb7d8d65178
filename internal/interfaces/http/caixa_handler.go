package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
)

// CaixaHandler posição de caixa, movimentos manuais e exportação (protegido).
type CaixaHandler struct {
	uc *usecase.CaixaUseCase
}

// NewCaixaHandler constrói o handler.
func NewCaixaHandler(uc *usecase.CaixaUseCase) *CaixaHandler {
	return &CaixaHandler{uc: uc}
}

// DailyPosition godoc
// @Summary      Posição de caixa do dia
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Data (YYYY-MM-DD, padrão hoje)"
// @Success      200   {object}  dto.CashPositionResponse
// @Router       /api/caixa/daily [get]
func (h *CaixaHandler) DailyPosition(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date deve estar no formato YYYY-MM-DD"})
		}
		date = parsed
	}
	out, err := h.uc.DailyPosition(c.UserContext(), GetStoreID(c), date)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// PeriodPosition godoc
// @Summary      Posição de caixa de um período
// @Tags         caixa
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {object}  dto.CashPositionResponse
// @Router       /api/caixa/period [get]
func (h *CaixaHandler) PeriodPosition(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.PeriodPosition(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar movimentos do período em CSV
// @Tags         caixa
// @Security     Bearer
// @Produce      text/csv
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {string}  string  "CSV"
// @Router       /api/caixa/export [get]
func (h *CaixaHandler) ExportCSV(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	csv, err := h.uc.ExportCSV(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="livro-caixa.csv"`)
	return c.SendString(csv)
}

// CreateMovement godoc
// @Summary      Criar movimento manual de caixa
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caixa/movements [post]
func (h *CaixaHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateManual(c.UserContext(), GetStoreID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMovement godoc
// @Summary      Editar movimento manual
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do movimento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/caixa/movements/{id} [put]
func (h *CaixaHandler) UpdateMovement(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateManual(c.UserContext(), GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteMovement godoc
// @Summary      Excluir movimento manual
// @Tags         caixa
// @Security     Bearer
// @Param        id  path  string  true  "ID do movimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/caixa/movements/{id} [delete]
func (h *CaixaHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.uc.DeleteManual(c.UserContext(), GetStoreID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustBalance godoc
// @Summary      Ajustar saldo de caixa/banco
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.AdjustBalanceRequest  true  "Ajuste"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caixa/adjust [post]
func (h *CaixaHandler) AdjustBalance(c *fiber.Ctx) error {
	var in dto.AdjustBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AdjustBalance(c.UserContext(), GetStoreID(c), in); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
