package helpers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeyUserID    contextKey = "userID"
	ContextKeyAdminUser contextKey = "adminUser"
)

// ValidationErrors flattens validator output into a field -> message map
// suitable for inline form feedback.
func ValidationErrors(err error) map[string]string {
	fields := map[string]string{}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "min":
			fields[name] = "is too short"
		case "max":
			fields[name] = "is too long"
		case "gte", "gt":
			fields[name] = "is too small"
		default:
			fields[name] = "is invalid"
		}
	}
	return fields
}
