package personnel

import "context"

// PersonnelRepository reads personnel identity rows for login and report
// display.
type PersonnelRepository interface {
	GetByCode(ctx context.Context, personnelCode string) (Personnel, error)
}
