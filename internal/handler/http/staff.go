package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/handler/http/response"
)

type StaffHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{
		staffService: staffService,
	}
}

// Register implements StaffHandler.
func (h *staffHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req staff.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.staffService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff registered successfully", result)
}

// Login implements StaffHandler.
func (h *staffHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req staff.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.staffService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
