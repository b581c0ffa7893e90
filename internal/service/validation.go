package service

import (
	"errors"
	"fmt"

	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateRequest runs struct validation and reports failures per field
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	out := make(apperrors.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		msg := "failed on " + fe.Tag()
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min", "max":
			msg = fmt.Sprintf("must have %s %s item(s)", fe.Tag(), fe.Param())
		}
		out = append(out, &apperrors.ValidationError{Field: fe.Field(), Message: msg})
	}
	return out
}
