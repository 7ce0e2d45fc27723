package usecase

import (
	"context"
	"fmt"

	"minshuku/config"
	"minshuku/domain"
	"minshuku/middleware"

	"golang.org/x/crypto/bcrypt"
)

type authUseCase struct{}

func NewAuthUseCase() domain.AuthUseCase {
	return &authUseCase{}
}

// Login checks the operator credentials configured in the environment and issues a token.
func (au *authUseCase) Login(ctx context.Context, data *domain.LoginRequest) (*string, error) {
	hash := config.GetOperatorPasswordHash()
	if hash == "" || config.GetAPISecret() == "" {
		return nil, domain.ErrLoginDisabled
	}
	if data.Username != config.GetOperatorUsername() {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(data.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := middleware.GenerateJWT(data.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token, err : %v", err)
	}
	return &token, nil
}
