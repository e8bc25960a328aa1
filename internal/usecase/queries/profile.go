package queries

import (
	"context"

	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"
)

type ProfileQueries interface {
	Profile(ctx context.Context, v shared.Viewer) (marketplace.User, error)
}

type profileQueriesImpl struct {
	gateway shared.AuthGateway
}

func NewProfileQueries(gateway shared.AuthGateway) ProfileQueries {
	return &profileQueriesImpl{gateway: gateway}
}

func (q *profileQueriesImpl) Profile(ctx context.Context, v shared.Viewer) (marketplace.User, error) {
	profile, err := q.gateway.Profile(ctx, v.Tokens)
	return profile, errs.Wrap(err, "load profile")
}
