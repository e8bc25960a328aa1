package request

import (
	"sync"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/user"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the gateway's rules to gin's binding engine.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		rules := map[string]validator.Func{
			"hourlabel":         validHourLabel,
			"reservationaction": validReservationAction,
			"userrole":          validUserRole,
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func validHourLabel(fl validator.FieldLevel) bool {
	_, err := reservation.NewHourLabel(fl.Field().String())
	return err == nil
}

func validReservationAction(fl validator.FieldLevel) bool {
	_, err := reservation.NewAction(fl.Field().String())
	return err == nil
}

func validUserRole(fl validator.FieldLevel) bool {
	_, err := user.NewRole(fl.Field().String())
	return err == nil
}
