package auth

import (
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	PersonnelCode string `json:"personnel_code"`
	Password      string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_code",
			Message: "personnel_code is required",
		})
	} else if !validator.IsValidPersonnelCode(r.PersonnelCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_code",
			Message: "personnel_code must be 3-10 digits",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
}
