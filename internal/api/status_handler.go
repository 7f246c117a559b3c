package api

import (
	"encoding/json"
	"net/http"

	"inner-story/backend/internal/interfaces"
)

// StatusHandler handles HTTP requests for client status checks.
type StatusHandler struct {
	service interfaces.StatusService
}

func NewStatusHandler(svc interfaces.StatusService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// StatusCreateRequest is the DTO for recording a status check.
type StatusCreateRequest struct {
	ClientName string `json:"client_name" validate:"required" example:"web"`
}

// HandleCreateStatus godoc
// @Summary      Record a status check
// @Tags         Status
// @Accept       json
// @Produce      json
// @Param        statusRequest  body      StatusCreateRequest  true  "Client name"
// @Success      200            {object}  model.StatusCheck
// @Failure      400            {object}  ErrorResponse
// @Router       /v1/status [post]
func (h *StatusHandler) HandleCreateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	check, err := h.service.Create(r.Context(), req.ClientName)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, check)
}

// HandleListStatus godoc
// @Summary      List status checks
// @Tags         Status
// @Produce      json
// @Success      200  {array}  model.StatusCheck
// @Router       /v1/status [get]
func (h *StatusHandler) HandleListStatus(w http.ResponseWriter, r *http.Request) {
	checks, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, checks)
}
