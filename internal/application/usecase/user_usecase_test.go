package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-manage/internal/application/dto"
	"github.com/jhoicas/inventory-manage/internal/application/usecase"
	"github.com/jhoicas/inventory-manage/internal/domain"
	"github.com/jhoicas/inventory-manage/internal/domain/entity"
	"github.com/jhoicas/inventory-manage/internal/domain/repository"
	pkgjwt "github.com/jhoicas/inventory-manage/pkg/jwt"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User // key: username
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func testJWTConfig() usecase.JWTConfig {
	return usecase.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "inventory-manage-test"}
}

func TestRegister_HasheaElPasswordYNoGuardaElPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testJWTConfig())

	err := uc.Register(context.Background(), dto.RegisterUserRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	stored := repo.users["alice"]
	assert.NotEmpty(t, stored.ID)
	assert.NotEqual(t, "secret123", stored.PasswordHash, "el password plano nunca se persiste")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_CamposFaltantes_ErroresPorCampo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testJWTConfig())

	err := uc.Register(context.Background(), dto.RegisterUserRequest{})
	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{domain.MsgFieldRequired}, fieldErrs["username"])
	assert.Equal(t, []string{domain.MsgFieldRequired}, fieldErrs["password"])
	assert.Empty(t, repo.users)
}

func TestRegister_UsernameDuplicado_PropagaErrorDelStore(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testJWTConfig())

	require.NoError(t, uc.Register(context.Background(), dto.RegisterUserRequest{Username: "alice", Password: "secret123"}))
	err := uc.Register(context.Background(), dto.RegisterUserRequest{Username: "alice", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestLogin_CredencialesValidas_DevuelveTokenParseable(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testJWTConfig()
	uc := usecase.NewUserUseCase(repo, cfg)

	require.NoError(t, uc.Register(context.Background(), dto.RegisterUserRequest{Username: "alice", Password: "secret123"}))

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, username, err := pkgjwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.users["alice"].ID, userID)
	assert.Equal(t, "alice", username)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testJWTConfig())

	require.NoError(t, uc.Register(context.Background(), dto.RegisterUserRequest{Username: "alice", Password: "secret123"}))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
