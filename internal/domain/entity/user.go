package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Papéis de usuário.
const (
	RoleAdmin    = "admin"
	RoleCaixa    = "caixa"
	RoleVendedor = "vendedor"
)

// User usuário da loja. CommissionRate em % sobre vendas não canceladas.
type User struct {
	ID             string
	StoreID        string
	Email          string
	PasswordHash   string
	Name           string
	Role           string // admin | caixa | vendedor
	CommissionRate decimal.Decimal
	Status         string // active | disabled
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
