// Package validation checks ingress DTOs so handlers never trust
// caller-supplied shapes.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its struct tags and converts failures into a
// 400 error naming the offending fields.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldName(fe), message(fe)))
	}
	return fiber.NewError(fiber.StatusBadRequest, strings.Join(details, "; "))
}

func fieldName(fe validator.FieldError) string {
	// Namespace is Struct.Field; drop the struct prefix.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return strings.ToLower(ns[i+1:])
	}
	return strings.ToLower(fe.Field())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "gtefield":
		return "must be >= " + strings.ToLower(fe.Param())
	default:
		return "is invalid"
	}
}
