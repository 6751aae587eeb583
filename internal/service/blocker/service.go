package blocker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
)

type BlockerServiceImpl struct {
	blocker.BlockerRepository
}

func NewBlockerService(repo blocker.BlockerRepository) blocker.BlockerService {
	return &BlockerServiceImpl{BlockerRepository: repo}
}

// Create implements blocker.BlockerService.
func (s *BlockerServiceImpl) Create(ctx context.Context, req blocker.CreateRequest) (blocker.BlockerResponse, error) {
	if err := req.Validate(); err != nil {
		return blocker.BlockerResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return blocker.BlockerResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	blockedBy, _ := claims["user_id"].(string)

	from, _ := time.Parse("2006-01-02", req.BlockedFrom)
	to, _ := time.Parse("2006-01-02", req.BlockedTo)

	created, err := s.BlockerRepository.Create(ctx, blocker.Blocker{
		EmployeeID:  req.EmployeeID,
		BlockedFrom: from,
		BlockedTo:   to,
		Reason:      req.Reason,
		BlockedBy:   blockedBy,
	})
	if err != nil {
		return blocker.BlockerResponse{}, err
	}

	return toResponse(created), nil
}

// ListByEmployee implements blocker.BlockerService.
func (s *BlockerServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]blocker.BlockerResponse, error) {
	blockers, err := s.BlockerRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]blocker.BlockerResponse, 0, len(blockers))
	for _, b := range blockers {
		result = append(result, toResponse(b))
	}
	return result, nil
}

// Delete implements blocker.BlockerService.
func (s *BlockerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.BlockerRepository.Delete(ctx, id)
}

func toResponse(b blocker.Blocker) blocker.BlockerResponse {
	return blocker.BlockerResponse{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		BlockedFrom: b.BlockedFrom.Format("2006-01-02"),
		BlockedTo:   b.BlockedTo.Format("2006-01-02"),
		Reason:      b.Reason,
		BlockedBy:   b.BlockedBy,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
