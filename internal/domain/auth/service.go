package auth

import "context"

// AuthService authenticates personnel and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
