package booking

import (
	"slices"
	"time"
)

type StateKind string

const (
	KindSelectingService StateKind = "selecting_service"
	KindSelectingDate    StateKind = "selecting_date"
	KindSelectingTime    StateKind = "selecting_time"
	KindConfirming       StateKind = "confirming"
	KindSubmitted        StateKind = "submitted"
)

// State is closed: only the types in this file implement it, so a flow can never hold an
// hour without a day or a day without fetched availability.
type State interface {
	Kind() StateKind
	sealed()
}

type SelectingService struct{}

type SelectingDate struct{}

type SelectingTime struct {
	Day   time.Time
	Hours []string
}

type Confirming struct {
	Day        time.Time
	Hours      []string
	Hour       string
	Submitting bool
}

type Submitted struct{}

func (SelectingService) Kind() StateKind { return KindSelectingService }
func (SelectingDate) Kind() StateKind    { return KindSelectingDate }
func (SelectingTime) Kind() StateKind    { return KindSelectingTime }
func (Confirming) Kind() StateKind       { return KindConfirming }
func (Submitted) Kind() StateKind        { return KindSubmitted }

func (SelectingService) sealed() {}
func (SelectingDate) sealed()    {}
func (SelectingTime) sealed()    {}
func (Confirming) sealed()       {}
func (Submitted) sealed()        {}

func (s SelectingTime) offers(hour string) bool {
	return slices.Contains(s.Hours, hour)
}

func (s Confirming) offers(hour string) bool {
	return slices.Contains(s.Hours, hour)
}
