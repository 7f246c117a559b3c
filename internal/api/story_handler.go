package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inner-story/backend/internal/interfaces"
)

// StoryHandler handles HTTP requests for the story document lifecycle.
type StoryHandler struct {
	service interfaces.StoryService
}

func NewStoryHandler(svc interfaces.StoryService) *StoryHandler {
	return &StoryHandler{service: svc}
}

// StoryInitRequest is the DTO for the story initialization endpoint.
type StoryInitRequest struct {
	ClientID string `json:"clientId" validate:"required" example:"client-A"`
}

// StorySaveRequest is the DTO for the story save endpoint. Sections must be
// present (it may name a subset of the fixed keys); omitted resonance stays
// null.
type StorySaveRequest struct {
	StoryID        string            `json:"storyId"`
	ClientID       string            `json:"clientId" validate:"required"`
	Sections       map[string]string `json:"sections" validate:"required"`
	ResonanceScore *float64          `json:"resonanceScore"`
}

// HandleInitStory godoc
// @Summary      Initialize a story
// @Description  Returns the client's existing story, or creates a fresh one at version 1. Idempotent.
// @Tags         Story
// @Accept       json
// @Produce      json
// @Param        initRequest  body      StoryInitRequest  true  "Client identity"
// @Success      200          {object}  model.Story
// @Failure      400          {object}  ErrorResponse
// @Router       /v1/story/init [post]
func (h *StoryHandler) HandleInitStory(w http.ResponseWriter, r *http.Request) {
	var req StoryInitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	story, err := h.service.Init(r.Context(), req.ClientID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, story)
}

// HandleSaveStory godoc
// @Summary      Save a story
// @Description  Persists new section content, bumping the version and recording the pre-update state in the bounded history. Saving an unknown story creates it.
// @Tags         Story
// @Accept       json
// @Produce      json
// @Param        saveRequest  body      StorySaveRequest  true  "Story content"
// @Success      200          {object}  model.Story
// @Failure      400          {object}  ErrorResponse
// @Router       /v1/story/save [put]
func (h *StoryHandler) HandleSaveStory(w http.ResponseWriter, r *http.Request) {
	var req StorySaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	story, err := h.service.Save(r.Context(), req.StoryID, req.ClientID, req.Sections, req.ResonanceScore)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, story)
}

// HandleGetStory godoc
// @Summary      Fetch a story
// @Description  Looks a story up by its id alone.
// @Tags         Story
// @Produce      json
// @Param        storyID  path      string  true  "Story ID"
// @Success      200      {object}  model.Story
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/story/{storyID} [get]
func (h *StoryHandler) HandleGetStory(w http.ResponseWriter, r *http.Request) {
	storyID := chi.URLParam(r, "storyID")

	story, err := h.service.Get(r.Context(), storyID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, story)
}
