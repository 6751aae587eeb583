package employee

import (
	"context"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/employee"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Designation:  req.Designation,
		Role:         user.Role(req.Role),
		Active:       true,
	}

	if req.JoinDate != nil && *req.JoinDate != "" {
		joined, err := time.Parse("2006-01-02", *req.JoinDate)
		if err == nil {
			e.JoinDate = &joined
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, toResponse(e))
	}
	return result, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Designation != nil {
		e.Designation = req.Designation
	}
	if req.Role != nil {
		e.Role = user.Role(*req.Role)
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	if err := s.EmployeeRepository.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(e), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Designation:  e.Designation,
		Role:         string(e.Role),
		Active:       e.Active,
	}
	if e.JoinDate != nil {
		joined := e.JoinDate.Format("2006-01-02")
		resp.JoinDate = &joined
	}
	return resp
}
