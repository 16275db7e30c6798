package service

import (
	"context"
	"fmt"
	"time"

	"mightyops-be/internal/config"
	"mightyops-be/internal/dto"
	"mightyops-be/internal/entity"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/internal/repository/specification"
	"mightyops-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	loginLimiter *serverutils.LoginLimiter
	authCfg      config.AuthConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, loginLimiter *serverutils.LoginLimiter, authCfg config.AuthConfig) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		loginLimiter: loginLimiter,
		authCfg:      authCfg,
	}
}

// Signup registers a user. The very first account becomes an admin so a
// fresh deployment has someone who can delete records.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, serverutils.BadRequest("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	role := entity.UserRoleUser
	if total == 0 {
		role = entity.UserRoleAdmin
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.SignupResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error) {
	if !s.loginLimiter.Allow(ctx, req.Email, ipAddress) {
		return nil, serverutils.NewAppError(429, "too many failed attempts, try again later", nil)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.Unauthorized("invalid credentials")
	}
	if user == nil {
		s.loginLimiter.RecordFailure(ctx, req.Email, ipAddress)
		return nil, serverutils.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.loginLimiter.RecordFailure(ctx, req.Email, ipAddress)
		return nil, serverutils.Unauthorized("invalid credentials")
	}

	s.loginLimiter.Reset(ctx, req.Email, ipAddress)

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Duration(s.authCfg.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.authCfg.JwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return serverutils.Unauthorized("invalid session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return serverutils.Unauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.UserRepository().UpdatePassword(ctx, user.Id, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
