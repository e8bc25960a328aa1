package booking

import (
	"slices"
	"time"

	"booking-gateway/internal/domain/reservation"

	"github.com/google/uuid"
)

// Snapshot is the persisted form of a Flow.
type Snapshot struct {
	ID         uuid.UUID         `json:"id"`
	SessionID  uuid.UUID         `json:"sessionId"`
	Services   []ServiceSnapshot `json:"services"`
	Scheduled  []int64           `json:"scheduled"`
	Current    int               `json:"current"`
	Reschedule *Reschedule       `json:"reschedule,omitempty"`
	Timezone   string            `json:"timezone"`
	State      StateSnapshot     `json:"state"`
	Generation int               `json:"generation"`
	Version    int               `json:"version"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type ServiceSnapshot struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	OwnerID     int64   `json:"ownerId"`
}

type StateSnapshot struct {
	Kind       StateKind  `json:"kind"`
	Day        *time.Time `json:"day,omitempty"`
	Hours      []string   `json:"hours,omitempty"`
	Hour       string     `json:"hour,omitempty"`
	Submitting bool       `json:"submitting,omitempty"`
}

func (f *Flow) Snapshot() Snapshot {
	services := make([]ServiceSnapshot, 0, len(f.services))
	for _, s := range f.services {
		services = append(services, ServiceSnapshot{
			ID:          s.ID(),
			Name:        s.Name(),
			Description: s.Description(),
			Duration:    s.Duration(),
			Price:       s.Price(),
			OwnerID:     s.OwnerID(),
		})
	}

	return Snapshot{
		ID:         f.id,
		SessionID:  f.sessionID,
		Services:   services,
		Scheduled:  slices.Clone(f.scheduled),
		Current:    f.current,
		Reschedule: f.reschedule,
		Timezone:   f.timezone,
		State:      snapshotState(f.state),
		Generation: f.generation,
		Version:    f.version,
		CreatedAt:  f.createdAt,
		UpdatedAt:  f.updatedAt,
	}
}

func snapshotState(s State) StateSnapshot {
	switch st := s.(type) {
	case SelectingTime:
		day := st.Day
		return StateSnapshot{Kind: KindSelectingTime, Day: &day, Hours: slices.Clone(st.Hours)}
	case Confirming:
		day := st.Day
		return StateSnapshot{
			Kind:       KindConfirming,
			Day:        &day,
			Hours:      slices.Clone(st.Hours),
			Hour:       st.Hour,
			Submitting: st.Submitting,
		}
	default:
		return StateSnapshot{Kind: s.Kind()}
	}
}

// Reconstruct rebuilds a flow loaded from storage, rejecting snapshots that describe an
// impossible step.
func Reconstruct(s Snapshot) (*Flow, error) {
	if _, err := loadLocation(s.Timezone); err != nil {
		return nil, err
	}

	services := make([]reservation.Service, 0, len(s.Services))
	for _, ss := range s.Services {
		svc, err := reservation.NewService(ss.ID, ss.Name, ss.Description, ss.Duration, ss.Price, ss.OwnerID)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	state, err := restoreState(s.State)
	if err != nil {
		return nil, err
	}
	if len(services) > 0 && (s.Current < 0 || s.Current >= len(services)) {
		return nil, ErrUnknownService
	}

	return &Flow{
		id:         s.ID,
		sessionID:  s.SessionID,
		services:   services,
		scheduled:  slices.Clone(s.Scheduled),
		current:    s.Current,
		reschedule: s.Reschedule,
		timezone:   s.Timezone,
		state:      state,
		generation: s.Generation,
		version:    s.Version,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}, nil
}

func restoreState(s StateSnapshot) (State, error) {
	switch s.Kind {
	case KindSelectingService:
		return SelectingService{}, nil
	case KindSelectingDate:
		return SelectingDate{}, nil
	case KindSelectingTime:
		if s.Day == nil {
			return nil, ErrInvalidTransition
		}
		return SelectingTime{Day: *s.Day, Hours: slices.Clone(s.Hours)}, nil
	case KindConfirming:
		if s.Day == nil || s.Hour == "" {
			return nil, ErrInvalidTransition
		}
		return Confirming{Day: *s.Day, Hours: slices.Clone(s.Hours), Hour: s.Hour, Submitting: s.Submitting}, nil
	case KindSubmitted:
		return Submitted{}, nil
	default:
		return nil, ErrInvalidTransition
	}
}
