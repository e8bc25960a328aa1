//go:build unit || e2e

package builder

import (
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/marketplace"
)

type UserBuilder struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Role       string
	Status     string
	Country    string
	City       string
	BusinessID *int64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        7,
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@example.com",
		Role:      "customer",
		Status:    "active",
		Country:   "Colombia",
		City:      "Bogota",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) AsBusiness() *UserBuilder {
	businessID := u.ID + 100
	u.Role = "business"
	u.BusinessID = &businessID
	return u
}

func (u *UserBuilder) Params() user.Params {
	return user.Params{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		Country:    u.Country,
		City:       u.City,
		BusinessID: u.BusinessID,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.ReconstructUser(u.Params())
}

func (u *UserBuilder) MustBuild() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

func (u *UserBuilder) BuildWire() marketplace.User {
	return marketplace.User{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Status:     u.Status,
		Role:       u.Role,
		Country:    u.Country,
		City:       u.City,
		BusinessID: u.BusinessID,
	}
}
