package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	blockerdomain "github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/response"
)

type BlockerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type blockerHandlerImpl struct {
	blockerService blockerdomain.BlockerService
}

func NewBlockerHandler(blockerService blockerdomain.BlockerService) BlockerHandler {
	return &blockerHandlerImpl{blockerService: blockerService}
}

// Create implements BlockerHandler.
func (h *blockerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req blockerdomain.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.blockerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Blocker created", created)
}

// ListByEmployee implements BlockerHandler.
func (h *blockerHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	blockers, err := h.blockerService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, blockers)
}

// Delete implements BlockerHandler.
func (h *blockerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.blockerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Blocker deleted", nil)
}
