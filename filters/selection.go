package filters

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Selection is the city/month/day triple chosen for one session iteration.
type Selection struct {
	City  string `validate:"required,city"`
	Month string `validate:"required,month"`
	Day   string `validate:"required,day"`
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

// Validate reports whether every field is a member of its enumeration.
func (s Selection) Validate() error {
	return validate.Struct(s)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidations adds the "city", "month" and "day" tags to v.
func RegisterValidations(v *validator.Validate) error {
	checks := map[string]func(string) bool{
		"city":  IsCity,
		"month": IsMonthChoice,
		"day":   IsDayChoice,
	}
	for tag, check := range checks {
		check := check // per-iteration copy; go.mod is go 1.21 (pre-1.22 loop semantics)
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}
