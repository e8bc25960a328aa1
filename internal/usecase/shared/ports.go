package shared

import (
	"context"
	"time"

	"booking-gateway/internal/infra/events"
	"booking-gateway/internal/infra/marketplace"
)

// AuthGateway is the slice of the marketplace API dealing with accounts and tokens.
type AuthGateway interface {
	Login(ctx context.Context, req marketplace.LoginRequest) (marketplace.AuthResult, error)
	Register(ctx context.Context, req marketplace.RegisterRequest) (marketplace.AuthResult, error)
	ForgotPassword(ctx context.Context, req marketplace.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req marketplace.ResetPasswordRequest) (string, error)
	ResendVerificationEmail(ctx context.Context, req marketplace.ResendVerificationRequest) (string, error)
	Logout(ctx context.Context, tokens marketplace.Tokens) error
	Refresh(ctx context.Context, tokens marketplace.Tokens) (marketplace.AuthResult, error)
	Profile(ctx context.Context, tokens marketplace.Tokens) (marketplace.User, error)
}

// MarketplaceGateway covers catalog, availability and reservation endpoints.
type MarketplaceGateway interface {
	Countries(ctx context.Context) ([]marketplace.Country, error)
	Cities(ctx context.Context, country string) ([]marketplace.City, error)
	AvailableHours(ctx context.Context, tokens marketplace.Tokens, serviceID int64, dayStart time.Time) ([]string, error)
	SearchCompanies(ctx context.Context, tokens marketplace.Tokens, s marketplace.CompanySearch) (marketplace.Page[marketplace.User], error)
	GetCompany(ctx context.Context, tokens marketplace.Tokens, id int64) (marketplace.User, error)
	GetCustomer(ctx context.Context, tokens marketplace.Tokens, id int64) (marketplace.User, error)
	ListReservations(ctx context.Context, tokens marketplace.Tokens, limit, offset int) (marketplace.Page[marketplace.Reservation], error)
	CreateReservation(ctx context.Context, tokens marketplace.Tokens, req marketplace.CreateReservationRequest) (string, error)
	UpdateReservation(ctx context.Context, tokens marketplace.Tokens, id int64, req marketplace.UpdateReservationRequest) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type ReferenceCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
