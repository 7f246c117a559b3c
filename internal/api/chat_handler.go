package api

import (
	"encoding/json"
	"net/http"

	"inner-story/backend/internal/interfaces"
	"inner-story/backend/internal/model"
)

// ChatHandler handles HTTP requests for chat generation and provider
// introspection.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleChat godoc
// @Summary      Generate a chat reply
// @Description  Sends a reflective-journaling conversation to the configured AI provider and returns the assistant's reply with usage and timing metadata.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      model.ChatRequest  true  "Conversation"
// @Success      200          {object}  model.ChatResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      502          {object}  ErrorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	// Enforces the message tags (non-empty list, role within the fixed set)
	// before the conversation goes anywhere near a provider.
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.service.HandleChat(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleProviderInfo godoc
// @Summary      Inspect provider selection
// @Description  Reports which AI provider and model the next chat request would use, given the current configuration.
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  service.ProviderInfo
// @Router       /v1/provider-info [get]
func (h *ChatHandler) HandleProviderInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.ProviderInfo())
}

// HandleHealth godoc
// @Summary      Health check
// @Description  Reports service liveness and the currently selected AI provider.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /v1/health [get]
func (h *ChatHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	info := h.service.ProviderInfo()
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Provider: info.Provider})
}
