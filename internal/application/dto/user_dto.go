package dto

import "github.com/shopspring/decimal"

// RegisterRequest cadastro de usuário da loja.
type RegisterRequest struct {
	Email          string          `json:"email" validate:"required,email"`
	Password       string          `json:"password" validate:"required,min=8"`
	Name           string          `json:"name" validate:"required"`
	Role           string          `json:"role" validate:"required,oneof=admin caixa vendedor"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	StoreID        string          `json:"store_id" validate:"required"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse token emitido após login/registro.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse dados públicos do usuário.
type UserResponse struct {
	ID             string          `json:"id"`
	StoreID        string          `json:"store_id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}
