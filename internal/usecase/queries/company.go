package queries

import (
	"context"

	"booking-gateway/internal/domain/search"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"
)

type SearchInput struct {
	Filters search.Filters
	// Page is honoured only when the filters are unchanged; new filters restart at page 0.
	Page *int
}

type CompanyPage struct {
	Items     []marketplace.User
	Count     int
	Filters   search.Filters
	Page      int
	PageSize  int
	PageCount int
}

type CompanyQueries interface {
	Search(ctx context.Context, v shared.Viewer, in SearchInput) (*CompanyPage, error)
	GetCompany(ctx context.Context, v shared.Viewer, id int64) (marketplace.User, error)
	GetCustomer(ctx context.Context, v shared.Viewer, id int64) (marketplace.User, error)
}

type companyQueriesImpl struct {
	gateway  shared.MarketplaceGateway
	states   SearchStateRepository
	pageSize int
	clock    clock.Clock
}

func NewCompanyQueries(gateway shared.MarketplaceGateway, states SearchStateRepository, cfg config.Config, clock clock.Clock) CompanyQueries {
	return &companyQueriesImpl{
		gateway:  gateway,
		states:   states,
		pageSize: cfg.Booking.PageSize,
		clock:    clock,
	}
}

func (q *companyQueriesImpl) Search(ctx context.Context, v shared.Viewer, in SearchInput) (*CompanyPage, error) {
	prev, found, err := q.states.Get(ctx, v.SessionID)
	if err != nil {
		return nil, errs.Wrap(err, "load search state")
	}
	if !found {
		prev = search.NewState(q.pageSize)
	}

	state := prev.Apply(in.Filters)
	if state.Filters == prev.Filters && in.Page != nil {
		state = state.GoTo(*in.Page)
	}
	if err := q.states.Save(ctx, v.SessionID, state, q.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "save search state")
	}

	res, err := q.gateway.SearchCompanies(ctx, v.Tokens, marketplace.CompanySearch{
		Text:    state.Filters.Text,
		City:    state.Filters.City,
		Country: state.Filters.Country,
		Limit:   state.PageSize,
		Offset:  state.Offset(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "search companies")
	}

	return &CompanyPage{
		Items:     res.Items,
		Count:     res.Count,
		Filters:   state.Filters,
		Page:      state.Page,
		PageSize:  state.PageSize,
		PageCount: search.PageCount(res.Count, state.PageSize),
	}, nil
}

func (q *companyQueriesImpl) GetCompany(ctx context.Context, v shared.Viewer, id int64) (marketplace.User, error) {
	company, err := q.gateway.GetCompany(ctx, v.Tokens, id)
	return company, errs.Wrap(err, "get company")
}

func (q *companyQueriesImpl) GetCustomer(ctx context.Context, v shared.Viewer, id int64) (marketplace.User, error) {
	customer, err := q.gateway.GetCustomer(ctx, v.Tokens, id)
	return customer, errs.Wrap(err, "get customer")
}
