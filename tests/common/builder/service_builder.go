//go:build unit || e2e

package builder

import (
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/infra/marketplace"
)

type ServiceBuilder struct {
	ID          int64
	Name        string
	Description string
	Duration    string
	Price       float64
	OwnerID     int64
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:          11,
		Name:        "Haircut",
		Description: "Classic cut",
		Duration:    "1h 30m",
		Price:       25,
		OwnerID:     3,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) WithID(id int64) *ServiceBuilder {
	s.ID = id
	return s
}

func (s *ServiceBuilder) WithDuration(d string) *ServiceBuilder {
	s.Duration = d
	return s
}

func (s *ServiceBuilder) BuildDomain() (reservation.Service, error) {
	return reservation.NewService(s.ID, s.Name, s.Description, s.Duration, s.Price, s.OwnerID)
}

func (s *ServiceBuilder) MustBuild() reservation.Service {
	svc, err := s.BuildDomain()
	if err != nil {
		panic(err)
	}
	return svc
}

// BuildWire returns the service as the marketplace serialises it.
func (s *ServiceBuilder) BuildWire() marketplace.Service {
	return marketplace.Service{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		UserID:      s.OwnerID,
	}
}
