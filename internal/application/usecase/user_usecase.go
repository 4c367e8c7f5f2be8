package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-manage/internal/application/dto"
	"github.com/jhoicas/inventory-manage/internal/domain"
	"github.com/jhoicas/inventory-manage/internal/domain/entity"
	"github.com/jhoicas/inventory-manage/internal/domain/repository"
	"github.com/jhoicas/inventory-manage/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UserUseCase casos de uso de usuarios: registro y login.
type UserUseCase struct {
	repo   repository.UserRepository
	jwtCfg JWTConfig
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, jwtCfg JWTConfig) *UserUseCase {
	return &UserUseCase{repo: repo, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida campos requeridos, hashea password con bcrypt
// y persiste solo el hash. Los errores de validación se detectan antes de tocar
// el store; un username duplicado lo reporta el store (unique constraint).
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterUserRequest) error {
	fieldErrs := domain.FieldErrors{}
	if in.Username == "" {
		fieldErrs.Add("username", domain.MsgFieldRequired)
	}
	if in.Password == "" {
		fieldErrs.Add("password", domain.MsgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.repo.Create(ctx, user)
}

// Login verifica username/password y genera un JWT.
func (uc *UserUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	fieldErrs := domain.FieldErrors{}
	if in.Username == "" {
		fieldErrs.Add("username", domain.MsgFieldRequired)
	}
	if in.Password == "" {
		fieldErrs.Add("password", domain.MsgFieldRequired)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	user, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
