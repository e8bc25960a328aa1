package response

import (
	"time"

	"booking-gateway/internal/usecase/commands"
)

type SignInResponse struct {
	User UserResponse `json:"user"`
	// ExpiresAt is absent when registration is pending email verification.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func FromSignIn(res *commands.SignInResult) SignInResponse {
	out := SignInResponse{User: FromUser(res.Profile)}
	if res.Session != nil {
		exp := res.Session.ExpiresAt()
		out.ExpiresAt = &exp
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
