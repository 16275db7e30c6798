package service

import (
	"context"
	"testing"

	"mightyops-be/internal/config"
	"mightyops-be/internal/dto"
	"mightyops-be/internal/entity"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/internal/repository/contract"
	"mightyops-be/internal/repository/specification"
	"mightyops-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if u, ok := r.users[s.Email]; ok {
				return u, nil
			}
		case specification.ByUserID:
			for _, u := range r.users {
				if u.Id == s.ID {
					return u, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	for _, u := range r.users {
		if u.Id == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeUow struct {
	unitofwork.UnitOfWork
	users contract.UserRepository
}

func (u *fakeUow) UserRepository() contract.UserRepository { return u.users }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

func newTestAuthService() IAuthService {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	factory := &fakeUowFactory{uow: &fakeUow{users: repo}}
	limiter := serverutils.NewLoginLimiter(nil, 5, 0)
	return NewAuthService(factory, limiter, config.AuthConfig{
		JwtSecret:     "test-secret",
		TokenTTLHours: 72,
	})
}

func TestSignupFirstUserIsAdmin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:    "first@example.com",
		FullName: "First User",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", res.Email)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "first@example.com",
		Password: "password123",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "admin", login.User.Role)
	assert.NotEmpty(t, login.AccessToken)
}

func TestSignupSecondUserIsRegular(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@example.com", FullName: "A", Password: "password123"})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, &dto.SignupRequest{Email: "b@example.com", FullName: "B", Password: "password123"})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "b@example.com", Password: "password123"}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "user", login.User.Role)
}

func TestSignupDuplicateEmailRejected(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@example.com", FullName: "A", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &dto.SignupRequest{Email: "a@example.com", FullName: "A2", Password: "password456"})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@example.com", FullName: "A", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "wrong"}, "127.0.0.1")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestLoginTokenSignedWithConfiguredSecret(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@example.com", FullName: "A", Password: "password123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "password123"}, "127.0.0.1")
	require.NoError(t, err)

	token, err := jwt.Parse(login.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	// No silent fallback key: only the configured secret verifies.
	_, err = jwt.Parse(login.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("default_secret"), nil
	})
	assert.Error(t, err)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{Email: "a@example.com", FullName: "A", Password: "password123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "password123"}, "127.0.0.1")
	require.NoError(t, err)

	userID := login.User.Id.String()
	err = svc.ChangePassword(ctx, userID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)

	err = svc.ChangePassword(ctx, userID, &dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "newpassword1"}, "127.0.0.1")
	assert.NoError(t, err)
}
