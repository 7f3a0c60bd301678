package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/socialsync/dashboard-api/internal/transfer"
)

// The dashboard serves a single seeded account; every handler is scoped
// to it.
const demoUserID int64 = 1

var validate = validator.New()

// validationErrors flattens validator output into the structured error
// list mutating endpoints return alongside a 400.
func validationErrors(err error) []transfer.FieldError {
	var fields []transfer.FieldError

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			fields = append(fields, transfer.FieldError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
		return fields
	}

	return []transfer.FieldError{{Field: "", Message: err.Error()}}
}
