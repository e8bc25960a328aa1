package response

import (
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/marketplace"
)

type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
}

type AttachmentResponse struct {
	ID           int64  `json:"id"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
}

// UserResponse is a profile, company or customer as returned by the marketplace.
type UserResponse struct {
	ID          int64               `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Email       string              `json:"email"`
	Status      string              `json:"status"`
	Role        string              `json:"role"`
	PhoneNumber string              `json:"phoneNumber"`
	Description string              `json:"description"`
	Country     string              `json:"country"`
	City        string              `json:"city"`
	Address     string              `json:"address"`
	BusinessID  *int64              `json:"businessId,omitempty"`
	Services    []ServiceResponse   `json:"services,omitempty"`
	Avatar      *AttachmentResponse `json:"avatar,omitempty"`
}

func FromUser(u marketplace.User) UserResponse {
	var res UserResponse
	copyInto(&res, &u)
	return res
}

func FromUsers(us []marketplace.User) []UserResponse {
	res := make([]UserResponse, 0, len(us))
	for _, u := range us {
		res = append(res, FromUser(u))
	}
	return res
}

type PartyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

func fromParty(u *user.User) *PartyResponse {
	if u == nil {
		return nil
	}
	return &PartyResponse{
		ID:          u.ID(),
		Name:        u.FullName(),
		Email:       u.Email(),
		PhoneNumber: u.PhoneNumber(),
		Address:     u.Address(),
		City:        u.City(),
	}
}
