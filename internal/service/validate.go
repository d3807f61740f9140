package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/safereach/backend/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	// e164ish matches a normalised phone number: "+" then 10 to 15 digits.
	e164ish = regexp.MustCompile(`^\+[0-9]{10,15}$`)

	userIDReplacer = strings.NewReplacer(`'`, "", `"`, "", ";", "")
	phoneReplacer  = strings.NewReplacer(" ", "", "-", "")
)

// validatorInstance returns the process-wide validator. The validator caches
// struct metadata, so it is built once.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("e164ish", func(fl validator.FieldLevel) bool {
			return e164ish.MatchString(fl.Field().String())
		})
	})
	return validate
}

// SanitizeUserID strips quote and semicolon characters and surrounding
// whitespace from a client-supplied user id.
func SanitizeUserID(id string) string {
	return strings.TrimSpace(userIDReplacer.Replace(id))
}

// NormalizePhone removes the spaces and dashes people type into phone numbers.
func NormalizePhone(phone string) string {
	return phoneReplacer.Replace(strings.TrimSpace(phone))
}

// validateStruct runs the tag rules on v and folds any failures into a single
// domain.ErrValidation.
func validateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

// describe renders one field failure in terms a client can act on.
func describe(fe validator.FieldError) string {
	field := fieldNames[fe.StructField()]
	if field == "" {
		field = strings.ToLower(fe.Field())
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
	case "latitude":
		return field + " must be between -90 and 90"
	case "longitude":
		return field + " must be between -180 and 180"
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range (%s %s)", field, fe.Tag(), fe.Param())
	case "e164ish":
		return fmt.Sprintf("%s %q is not a phone number in +<country><number> form", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// fieldNames maps struct fields to the names clients send over the wire.
var fieldNames = map[string]string{
	"UserID":       "user_id",
	"Lat":          "destination_lat",
	"Lng":          "destination_lng",
	"Latitude":     "latitude",
	"Longitude":    "longitude",
	"Accuracy":     "accuracy",
	"RadiusMeters": "radius",
	"Contacts":     "contacts",
	"Body":         "message",
	"Recipients":   "recipient_numbers",
	"PlaceType":    "place_type",
}
