package validator

import (
	"fmt"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("ticket_category", validateTicketCategory)

	return validator
}

func validateTicketCategory(fl validator.FieldLevel) bool {
	return domain.TicketCategory(fl.Field().String()).Known()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "ticket_category":
		return fmt.Sprintf("must be one of %s, %s, %s", domain.Adult, domain.Child, domain.Infant)
	default:
		return "is invalid"
	}
}
