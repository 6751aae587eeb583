package manager

import (
	"context"

	"github.com/tracklab/timesheet-backend-go/internal/domain/employee"
	"github.com/tracklab/timesheet-backend-go/internal/domain/manager"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

type MappingServiceImpl struct {
	manager.MappingRepository
	employee.EmployeeRepository
}

func NewMappingService(mappingRepo manager.MappingRepository, employeeRepo employee.EmployeeRepository) manager.MappingService {
	return &MappingServiceImpl{
		MappingRepository:  mappingRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements manager.MappingService. The manager side must actually hold a
// privileged role; the employee side just has to exist.
func (s *MappingServiceImpl) Create(ctx context.Context, req manager.CreateRequest) (manager.MappingResponse, error) {
	if err := req.Validate(); err != nil {
		return manager.MappingResponse{}, err
	}

	mgr, err := s.EmployeeRepository.GetByID(ctx, req.ManagerID)
	if err != nil {
		return manager.MappingResponse{}, err
	}
	if mgr.Role != user.RoleManager && mgr.Role != user.RoleAdmin {
		return manager.MappingResponse{}, user.ErrManagerAccessRequired
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return manager.MappingResponse{}, err
	}

	created, err := s.MappingRepository.Create(ctx, manager.Mapping{
		ManagerID:  req.ManagerID,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return manager.MappingResponse{}, err
	}

	return toResponse(created), nil
}

// ListByManager implements manager.MappingService.
func (s *MappingServiceImpl) ListByManager(ctx context.Context, managerID string) ([]manager.MappingResponse, error) {
	mappings, err := s.MappingRepository.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return toResponses(mappings), nil
}

// ListByEmployee implements manager.MappingService.
func (s *MappingServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]manager.MappingResponse, error) {
	mappings, err := s.MappingRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(mappings), nil
}

// Delete implements manager.MappingService.
func (s *MappingServiceImpl) Delete(ctx context.Context, id string) error {
	return s.MappingRepository.Delete(ctx, id)
}

func toResponse(m manager.Mapping) manager.MappingResponse {
	return manager.MappingResponse{
		ID:           m.ID,
		ManagerID:    m.ManagerID,
		ManagerName:  m.ManagerName,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
	}
}

func toResponses(mappings []manager.Mapping) []manager.MappingResponse {
	result := make([]manager.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		result = append(result, toResponse(m))
	}
	return result
}
