package holiday

import (
	"context"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(repo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: repo}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toResponse(created), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, toResponse(h))
	}
	return result, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
