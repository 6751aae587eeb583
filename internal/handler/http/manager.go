package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	managerdomain "github.com/tracklab/timesheet-backend-go/internal/domain/manager"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/response"
)

type ManagerMappingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByManager(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type managerMappingHandlerImpl struct {
	mappingService managerdomain.MappingService
}

func NewManagerMappingHandler(mappingService managerdomain.MappingService) ManagerMappingHandler {
	return &managerMappingHandlerImpl{mappingService: mappingService}
}

// Create implements ManagerMappingHandler.
func (h *managerMappingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req managerdomain.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.mappingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mapping created", created)
}

// ListByManager implements ManagerMappingHandler.
func (h *managerMappingHandlerImpl) ListByManager(w http.ResponseWriter, r *http.Request) {
	managerID := chi.URLParam(r, "managerID")

	mappings, err := h.mappingService.ListByManager(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mappings)
}

// ListByEmployee implements ManagerMappingHandler.
func (h *managerMappingHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	mappings, err := h.mappingService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mappings)
}

// Delete implements ManagerMappingHandler.
func (h *managerMappingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.mappingService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mapping deleted", nil)
}
