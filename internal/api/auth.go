package api

import (
	"context"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := s.client.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.post(ctx, "/auth/logout", nil, nil)
}

// Me validates the current token and returns the authenticated user.
func (s *AuthService) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := s.client.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
