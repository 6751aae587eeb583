package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tracklab/timesheet-backend-go/internal/domain/manager"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/database"
)

type managerMappingRepository struct {
	db *database.DB
}

func NewManagerMappingRepository(db *database.DB) manager.MappingRepository {
	return &managerMappingRepository{db: db}
}

// Create implements manager.MappingRepository.
func (r *managerMappingRepository) Create(ctx context.Context, m manager.Mapping) (manager.Mapping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO manager_mappings (manager_id, employee_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, m.ManagerID, m.EmployeeID).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return manager.Mapping{}, manager.ErrMappingExists
		}
		return manager.Mapping{}, fmt.Errorf("failed to create manager mapping: %w", err)
	}

	return m, nil
}

// ListByManager implements manager.MappingRepository.
func (r *managerMappingRepository) ListByManager(ctx context.Context, managerID string) ([]manager.Mapping, error) {
	query := `
		SELECT m.id, m.manager_id, m.employee_id, m.created_at, mgr.full_name, emp.full_name
		FROM manager_mappings m
		JOIN employees mgr ON mgr.id = m.manager_id
		JOIN employees emp ON emp.id = m.employee_id
		WHERE m.manager_id = $1
		ORDER BY emp.full_name
	`
	return r.list(ctx, query, managerID)
}

// ListByEmployee implements manager.MappingRepository.
func (r *managerMappingRepository) ListByEmployee(ctx context.Context, employeeID string) ([]manager.Mapping, error) {
	query := `
		SELECT m.id, m.manager_id, m.employee_id, m.created_at, mgr.full_name, emp.full_name
		FROM manager_mappings m
		JOIN employees mgr ON mgr.id = m.manager_id
		JOIN employees emp ON emp.id = m.employee_id
		WHERE m.employee_id = $1
		ORDER BY mgr.full_name
	`
	return r.list(ctx, query, employeeID)
}

func (r *managerMappingRepository) list(ctx context.Context, query string, arg string) ([]manager.Mapping, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list manager mappings: %w", err)
	}
	defer rows.Close()

	var result []manager.Mapping
	for rows.Next() {
		var m manager.Mapping
		if err := rows.Scan(&m.ID, &m.ManagerID, &m.EmployeeID, &m.CreatedAt, &m.ManagerName, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan manager mapping: %w", err)
		}
		result = append(result, m)
	}

	return result, rows.Err()
}

// Exists implements manager.MappingRepository.
func (r *managerMappingRepository) Exists(ctx context.Context, managerID, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM manager_mappings WHERE manager_id = $1 AND employee_id = $2)`,
		managerID, employeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check manager mapping: %w", err)
	}

	return exists, nil
}

// Delete implements manager.MappingRepository.
func (r *managerMappingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM manager_mappings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete manager mapping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return manager.ErrMappingNotFound
	}

	return nil
}
