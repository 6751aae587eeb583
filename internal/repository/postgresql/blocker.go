package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/database"
)

type blockerRepository struct {
	db *database.DB
}

func NewBlockerRepository(db *database.DB) blocker.BlockerRepository {
	return &blockerRepository{db: db}
}

// Create implements blocker.BlockerRepository.
func (r *blockerRepository) Create(ctx context.Context, b blocker.Blocker) (blocker.Blocker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_blockers (employee_id, blocked_from, blocked_to, reason, blocked_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		b.EmployeeID, b.BlockedFrom, b.BlockedTo, b.Reason, b.BlockedBy,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return blocker.Blocker{}, fmt.Errorf("failed to create blocker: %w", err)
	}

	return b, nil
}

// ListByEmployee implements blocker.BlockerRepository.
func (r *blockerRepository) ListByEmployee(ctx context.Context, employeeID string) ([]blocker.Blocker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, blocked_from, blocked_to, reason, blocked_by, created_at
		FROM timesheet_blockers
		WHERE employee_id = $1
		ORDER BY blocked_from
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blockers: %w", err)
	}
	defer rows.Close()

	var result []blocker.Blocker
	for rows.Next() {
		var b blocker.Blocker
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.BlockedFrom, &b.BlockedTo, &b.Reason, &b.BlockedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blocker: %w", err)
		}
		result = append(result, b)
	}

	return result, rows.Err()
}

// Delete implements blocker.BlockerRepository.
func (r *blockerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheet_blockers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blocker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blocker.ErrBlockerNotFound
	}

	return nil
}

// DeleteExpiredBefore implements blocker.BlockerRepository.
func (r *blockerRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheet_blockers WHERE blocked_to < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired blockers: %w", err)
	}

	return tag.RowsAffected(), nil
}
