package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
)

// VendaHandler checkout, cancelamento e relatórios de venda (protegido).
type VendaHandler struct {
	uc *usecase.VendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *usecase.VendaUseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Checkout godoc
// @Summary      Fechar venda ou orçamento
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrinho"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Checkout(c.UserContext(), GetStoreID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter venda por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetStoreID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vendas/orçamentos do período
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        start       query  string  true   "Início (YYYY-MM-DD)"
// @Param        end         query  string  true   "Fim (YYYY-MM-DD)"
// @Param        quote_type  query  string  false  "orcamento | venda"
// @Success      200         {array}  dto.SaleResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) List(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ListByPeriod(c.UserContext(), GetStoreID(c), c.Query("quote_type"), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar venda e devolver estoque
// @Tags         vendas
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/cancel [post]
func (h *VendaHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.UserContext(), GetStoreID(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProfitReport godoc
// @Summary      Relatório de vendas, custo e lucro
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {object}  dto.ProfitReportResponse
// @Router       /api/relatorios/lucro [get]
func (h *VendaHandler) ProfitReport(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ProfitReport(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CommissionReport godoc
// @Summary      Relatório de comissões por vendedor
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {object}  dto.CommissionReportResponse
// @Router       /api/relatorios/comissoes [get]
func (h *VendaHandler) CommissionReport(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CommissionReport(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumo do dia e do mês
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *VendaHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), GetStoreID(c), time.Now())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
