package personnel

import "errors"

var (
	ErrPersonnelNotFound      = errors.New("personnel record not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
