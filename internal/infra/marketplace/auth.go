package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	var out AuthResult
	_, err := do(ctx, c, call{method: http.MethodPost, path: "/auth/login", body: req}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	var out AuthResult
	_, err := do(ctx, c, call{method: http.MethodPost, path: "/auth/register", body: req}, &out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error) {
	return do[json.RawMessage](ctx, c, call{method: http.MethodPost, path: "/auth/forgot-password", body: req}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error) {
	return do[json.RawMessage](ctx, c, call{method: http.MethodPost, path: "/auth/reset-password", body: req}, nil)
}

func (c *Client) ResendVerificationEmail(ctx context.Context, req ResendVerificationRequest) (string, error) {
	return do[json.RawMessage](ctx, c, call{method: http.MethodPost, path: "/auth/resend-verification-email", body: req}, nil)
}

// Logout revokes the refresh token upstream.
func (c *Client) Logout(ctx context.Context, tokens Tokens) error {
	_, err := do[json.RawMessage](ctx, c, call{method: http.MethodPost, path: "/auth/logout", tokens: &tokens}, nil)
	return err
}

// Refresh exchanges the refresh token, sent in the refresh header, for new tokens.
func (c *Client) Refresh(ctx context.Context, tokens Tokens) (AuthResult, error) {
	var out AuthResult
	_, err := do(ctx, c, call{
		method: http.MethodPost,
		path:   "/auth/refresh-token",
		tokens: &Tokens{Refresh: tokens.Refresh},
	}, &out)
	return out, err
}
