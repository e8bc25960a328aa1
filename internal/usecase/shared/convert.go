package shared

import (
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/errs"
)

var ErrUnexpectedUpstreamData = errs.New("unexpected data from marketplace")

func ToService(s marketplace.Service) (reservation.Service, error) {
	svc, err := reservation.NewService(s.ID, s.Name, s.Description, s.Duration, s.Price, s.UserID)
	if err != nil {
		return reservation.Service{}, errs.Mark(errs.Wrap(err, "service"), ErrUnexpectedUpstreamData)
	}
	return svc, nil
}

// ToUser converts a user reference. Nested references may omit the role, in which case the
// role implied by their position is used.
func ToUser(u marketplace.User, fallback user.Role) (*user.User, error) {
	role := u.Role
	if role == "" {
		role = string(fallback)
	}
	var avatarID *int64
	if u.Avatar != nil {
		id := u.Avatar.ID
		avatarID = &id
	}

	usr, err := user.ReconstructUser(user.Params{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        role,
		Status:      u.Status,
		Country:     u.Country,
		City:        u.City,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Description: u.Description,
		BusinessID:  u.BusinessID,
		AvatarID:    avatarID,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "user"), ErrUnexpectedUpstreamData)
	}
	return usr, nil
}

func ToReservation(r marketplace.Reservation) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "reservation slot"), ErrUnexpectedUpstreamData)
	}
	status, err := reservation.NewStatus(r.Status)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "reservation status"), ErrUnexpectedUpstreamData)
	}
	svc, err := ToService(r.Service)
	if err != nil {
		return nil, err
	}
	business, err := ToUser(r.Business, user.RoleBusiness)
	if err != nil {
		return nil, err
	}
	customer, err := ToUser(r.Customer, user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(r.ID, slot, status, svc, business, customer, r.CreatedAt, r.UpdatedAt), nil
}

func ToServices(in []marketplace.Service) ([]reservation.Service, error) {
	out := make([]reservation.Service, 0, len(in))
	for _, s := range in {
		svc, err := ToService(s)
		if err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, nil
}
