package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/caixa"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
)

// CaixaUseCase posição de caixa, movimentos manuais e exportação CSV.
type CaixaUseCase struct {
	movements repository.MovementRepository
	rpc       repository.CashRPC
}

// NewCaixaUseCase constrói o caso de uso.
func NewCaixaUseCase(movements repository.MovementRepository, rpc repository.CashRPC) *CaixaUseCase {
	return &CaixaUseCase{movements: movements, rpc: rpc}
}

// DailyPosition calcula a posição de caixa de um dia. Os movimentos são
// buscados por dois critérios sobrepostos (data contábil e created_at) e
// unidos por ID antes de agregar, para não contar valores em dobro.
// O saldo de abertura vem do backend e fica em campo separado: nunca entra
// nos saldos calculados.
func (uc *CaixaUseCase) DailyPosition(ctx context.Context, storeID string, date time.Time) (*dto.CashPositionResponse, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	byDate, err := uc.movements.ListByDate(ctx, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("buscar movimentos por data: %w", err)
	}
	byCreated, err := uc.movements.ListByCreatedAt(ctx, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("buscar movimentos por criação: %w", err)
	}
	merged := caixa.Dedupe(byDate, byCreated)
	totals := caixa.Aggregate(merged)

	summary, err := uc.rpc.GetCashSummaryForDate(ctx, storeID, start)
	if err != nil {
		return nil, fmt.Errorf("resumo de caixa do backend: %w", err)
	}

	resp := buildPosition(totals, merged)
	resp.Date = start.Format("2006-01-02")
	resp.OpeningBalance = summary.OpeningBalance
	return resp, nil
}

// PeriodPosition calcula a posição acumulada de um intervalo de datas.
// Sem saldo de abertura: o recorte é arbitrário.
func (uc *CaixaUseCase) PeriodPosition(ctx context.Context, storeID string, start, end time.Time) (*dto.CashPositionResponse, error) {
	byDate, err := uc.movements.ListByDate(ctx, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("buscar movimentos por data: %w", err)
	}
	byCreated, err := uc.movements.ListByCreatedAt(ctx, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("buscar movimentos por criação: %w", err)
	}
	merged := caixa.Dedupe(byDate, byCreated)

	resp := buildPosition(caixa.Aggregate(merged), merged)
	resp.StartDate = start.Format("2006-01-02")
	resp.EndDate = end.Format("2006-01-02")
	return resp, nil
}

// CreateManual registra um movimento manual de caixa.
func (uc *CaixaUseCase) CreateManual(ctx context.Context, storeID, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	mType := entity.MovementType(in.Type)
	if !mType.Valid() {
		return nil, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, in.Type)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: valor não pode ser negativo", domain.ErrInvalidInput)
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	m := &entity.Movement{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		Type:          mType,
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		Date:          date,
		ReferenceType: entity.MovementRefManual,
		CreatedAt:     time.Now(),
		CreatedBy:     userID,
	}
	if err := uc.movements.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMovementResponse(*m), nil
}

// UpdateManual edita um movimento manual. Movimentos gerados por venda ou
// ajuste de saldo são imutáveis.
func (uc *CaixaUseCase) UpdateManual(ctx context.Context, storeID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	if !m.IsManual() {
		return nil, domain.ErrImmutableMovement
	}
	if in.Type != nil {
		t := entity.MovementType(*in.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, *in.Type)
		}
		m.Type = t
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: valor não pode ser negativo", domain.ErrInvalidInput)
		}
		m.Amount = *in.Amount
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Date != nil {
		m.Date = *in.Date
	}
	if err := uc.movements.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMovementResponse(*m), nil
}

// DeleteManual exclui um movimento manual.
func (uc *CaixaUseCase) DeleteManual(ctx context.Context, storeID, id string) error {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil || m.StoreID != storeID {
		return domain.ErrNotFound
	}
	if !m.IsManual() {
		return domain.ErrImmutableMovement
	}
	return uc.movements.Delete(ctx, id)
}

// AdjustBalance delega o ajuste de saldo ao backend, que grava o par de
// movimentos de ajuste (caixa e banco) na data informada.
func (uc *CaixaUseCase) AdjustBalance(ctx context.Context, storeID string, in dto.AdjustBalanceRequest) error {
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	if err := uc.rpc.AdjustCashBalance(ctx, storeID, date, in.CashAmount, in.BankAmount); err != nil {
		return fmt.Errorf("ajustar saldo: %w", err)
	}
	return nil
}

// csvHeader cabeçalho fixo da exportação do livro-caixa.
const csvHeader = "Data,Tipo,Valor,Descrição,Categoria"

// ExportCSV exporta os movimentos do período em CSV simples, separado por
// vírgula e sem aspas. Descrições com vírgula quebram o parse ingênuo;
// limitação conhecida e aceita pelo consumidor do arquivo.
func (uc *CaixaUseCase) ExportCSV(ctx context.Context, storeID string, start, end time.Time) (string, error) {
	byDate, err := uc.movements.ListByDate(ctx, storeID, start, end)
	if err != nil {
		return "", fmt.Errorf("buscar movimentos: %w", err)
	}
	byCreated, err := uc.movements.ListByCreatedAt(ctx, storeID, start, end)
	if err != nil {
		return "", fmt.Errorf("buscar movimentos por criação: %w", err)
	}
	merged := caixa.Dedupe(byDate, byCreated)

	var b strings.Builder
	b.WriteString(csvHeader + "\n")
	for _, m := range merged {
		b.WriteString(strings.Join([]string{
			m.Date.Format("2006-01-02"),
			string(m.Type),
			m.Amount.String(),
			m.Description,
			m.Category,
		}, ","))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func buildPosition(t caixa.Totals, movements []entity.Movement) *dto.CashPositionResponse {
	resp := &dto.CashPositionResponse{
		CashEntries:  t.CashEntries,
		CashExits:    t.CashExits,
		CashAdjust:   t.CashAdjust,
		CashBalance:  t.CashBalance(),
		BankEntries:  t.BankEntries,
		BankExits:    t.BankExits,
		BankAdjust:   t.BankAdjust,
		BankBalance:  t.BankBalance(),
		TotalEntries: t.TotalEntries(),
		TotalExits:   t.TotalExits(),
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, *toMovementResponse(m))
	}
	return resp
}

func toMovementResponse(m entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		Type:          string(m.Type),
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		Date:          m.Date,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
	}
}
