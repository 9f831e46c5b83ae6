package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/personnel"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type personnelRepository struct {
	db *database.DB
}

// GetByCode implements personnel.PersonnelRepository.
func (r *personnelRepository) GetByCode(ctx context.Context, personnelCode string) (personnel.Personnel, error) {
	q := r.db.Querier()

	query := `
		SELECT id, personnel_code, full_name, role, password_hash, created_at, updated_at
		FROM personnel
		WHERE personnel_code = $1
	`

	var p personnel.Personnel
	err := q.QueryRow(ctx, query, personnelCode).Scan(
		&p.ID, &p.PersonnelCode, &p.FullName, &p.Role, &p.PasswordHash,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, fmt.Errorf("failed to get personnel by code: %w", err)
	}

	return p, nil
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepository{db: db}
}
