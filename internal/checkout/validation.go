package checkout

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bostany/storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

// ValidationError lists the delivery fields that failed, by JSON name.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func trimForm(f models.DeliveryForm) models.DeliveryForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.Governorate = strings.TrimSpace(f.Governorate)
	f.City = strings.TrimSpace(f.City)
	f.StreetAddress = strings.TrimSpace(f.StreetAddress)
	f.Building = strings.TrimSpace(f.Building)
	f.Landmark = strings.TrimSpace(f.Landmark)
	f.Notes = strings.TrimSpace(f.Notes)
	return f
}

// validateDelivery trims f and reports every blank required field at once.
func validateDelivery(f models.DeliveryForm) (models.DeliveryForm, error) {
	f = trimForm(f)
	err := validate.Struct(f)
	if err == nil {
		return f, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return f, err
	}
	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, fe.Field())
	}
	return f, out
}
