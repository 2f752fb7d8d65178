package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/application/usecase"
)

// ContabilHandler plano de contas, lançamentos e demonstrativos (protegido).
type ContabilHandler struct {
	uc *usecase.ContabilUseCase
}

// NewContabilHandler constrói o handler.
func NewContabilHandler(uc *usecase.ContabilUseCase) *ContabilHandler {
	return &ContabilHandler{uc: uc}
}

// CreateAccount godoc
// @Summary      Criar conta do plano de contas
// @Tags         contabil
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Conta"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contabil/contas [post]
func (h *ContabilHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code e name são obrigatórios"})
	}
	out, err := h.uc.CreateAccount(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAccounts godoc
// @Summary      Listar plano de contas
// @Tags         contabil
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/contabil/contas [get]
func (h *ContabilHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.uc.ListAccounts(c.UserContext(), GetStoreID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CreateEntry godoc
// @Summary      Criar lançamento contábil
// @Tags         contabil
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "Lançamento (partidas dobradas)"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contabil/lancamentos [post]
func (h *ContabilHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateEntry(c.UserContext(), GetStoreID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetEntry godoc
// @Summary      Obter lançamento por ID
// @Tags         contabil
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do lançamento"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contabil/lancamentos/{id} [get]
func (h *ContabilHandler) GetEntry(c *fiber.Ctx) error {
	out, err := h.uc.GetEntry(c.UserContext(), GetStoreID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lançamento não encontrado"})
	}
	return c.JSON(out)
}

// ListEntries godoc
// @Summary      Listar lançamentos do período
// @Tags         contabil
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {array}  dto.EntryResponse
// @Router       /api/contabil/lancamentos [get]
func (h *ContabilHandler) ListEntries(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ListEntries(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BalanceSheet godoc
// @Summary      Balanço patrimonial do período
// @Tags         contabil
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {object}  dto.BalanceSheetResponse
// @Router       /api/contabil/balanco [get]
func (h *ContabilHandler) BalanceSheet(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BalanceSheet(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// IncomeStatement godoc
// @Summary      DRE do período
// @Tags         contabil
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {object}  dto.IncomeStatementResponse
// @Router       /api/contabil/dre [get]
func (h *ContabilHandler) IncomeStatement(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.IncomeStatement(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Ratios godoc
// @Summary      Índices financeiros do período
// @Tags         contabil
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim (YYYY-MM-DD)"
// @Success      200    {object}  dto.RatiosResponse
// @Router       /api/contabil/indices [get]
func (h *ContabilHandler) Ratios(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Ratios(c.UserContext(), GetStoreID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
