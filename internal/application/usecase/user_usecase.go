package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lojafacil/pdv-api/internal/application/dto"
	"github.com/lojafacil/pdv-api/internal/domain"
	"github.com/lojafacil/pdv-api/internal/domain/entity"
	"github.com/lojafacil/pdv-api/internal/domain/repository"
	"github.com/lojafacil/pdv-api/pkg/jwt"
)

// UserUseCase registro, login e emissão de token.
type UserUseCase struct {
	users      repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	jwtMinutes int
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(users repository.UserRepository, jwtSecret, jwtIssuer string, jwtMinutes int) *UserUseCase {
	return &UserUseCase{users: users, jwtSecret: jwtSecret, jwtIssuer: jwtIssuer, jwtMinutes: jwtMinutes}
}

// Register cadastra um usuário com senha bcrypt e devolve o token.
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !validRole(in.Role) {
		return nil, fmt.Errorf("%w: papel %q", domain.ErrInvalidInput, in.Role)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: senha deve ter ao menos 8 caracteres", domain.ErrInvalidInput)
	}
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gerar hash de senha: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		StoreID:        in.StoreID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Name:           in.Name,
		Role:           in.Role,
		CommissionRate: in.CommissionRate,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// Login valida as credenciais e devolve o token.
func (uc *UserUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.issueToken(user)
}

// GetByID obtém os dados públicos de um usuário.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (uc *UserUseCase) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.StoreID, user.Role, uc.jwtIssuer, uc.jwtMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleCaixa, entity.RoleVendedor:
		return true
	}
	return false
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		StoreID:        u.StoreID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		CommissionRate: u.CommissionRate,
	}
}
