// Package mappers converts between domain entities and gorm records.
//
// Records coming from the store are checked for missing fields before any
// entity constructor runs, so a null column or a partial row is reported by
// name instead of surfacing as a generic business-rule error.
package mappers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"booking-backend/domain"
)

var validate = validator.New()

var propertyMessages = map[string]string{
	"ID":                "O ID da propriedade é obrigatório",
	"Name":              "Nome da propriedade é obrigatório",
	"MaxGuests":         "Capacidade máxima é obrigatória",
	"BasePricePerNight": "Preço base por noite é obrigatório",
}

var userMessages = map[string]string{
	"ID":   "O ID do usuário é obrigatório",
	"Name": "Nome do usuário é obrigatório",
}

var bookingMessages = map[string]string{
	"ID":         "O ID da reserva é obrigatório",
	"Property":   "A propriedade da reserva é obrigatória",
	"Guest":      "O hóspede da reserva é obrigatório",
	"StartDate":  "Data de início é obrigatória",
	"EndDate":    "Data de término é obrigatória",
	"GuestCount": "Número de hóspedes é obrigatório",
	"TotalPrice": "Preço total é obrigatório",
	"Status":     "Status da reserva é obrigatório",
}

// nested booking fields report the message of the record they belong to
var nestedMessages = map[string]map[string]string{
	"Property": propertyMessages,
	"Guest":    userMessages,
}

// checkRecord runs the `validate` tags of a record and turns the first
// failure into a domain.ValidationError.
func checkRecord(record any, messages map[string]string) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate record: %w", err)
	}
	return domain.NewValidationError(messageFor(fieldErrs[0], messages))
}

func messageFor(fe validator.FieldError, messages map[string]string) string {
	// "Booking.Property.Name" -> "Property.Name"
	path := fe.StructNamespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}

	if fe.Tag() == "oneof" && path == "Status" {
		return "Status da reserva inválido"
	}
	if msg, ok := messages[path]; ok {
		return msg
	}
	if parent, field, ok := strings.Cut(path, "."); ok {
		if nested, found := nestedMessages[parent]; found {
			if msg, ok := nested[field]; ok {
				return msg
			}
		}
	}
	return fmt.Sprintf("%s é obrigatório", path)
}
