package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/auth"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/personnel"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	personnel.PersonnelRepository
	jwtService jwt.Service
}

func NewAuthService(personnelRepo personnel.PersonnelRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		PersonnelRepository: personnelRepo,
		jwtService:          jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	person, err := a.PersonnelRepository.GetByCode(ctx, req.PersonnelCode)
	if err != nil {
		if errors.Is(err, personnel.ErrPersonnelNotFound) {
			// Same response as a wrong password.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get personnel by code: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(person.ID, person.PersonnelCode, person.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		FullName:    person.FullName,
		Role:        string(person.Role),
	}, nil
}
