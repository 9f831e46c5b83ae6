package response

import (
	"errors"
	"net/http"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/auth"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/personnel"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Personnel domain errors
	case errors.Is(err, personnel.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")

	// Calendar errors
	case errors.Is(err, jalali.ErrInvalidDate):
		BadRequest(w, "Invalid calendar date", nil)
	case errors.Is(err, tehran.ErrInvalidTime):
		BadRequest(w, "Invalid clock time", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
