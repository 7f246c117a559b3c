package model

import (
	"time"
)

// Message is a single entry in a chat conversation. Messages are immutable
// once constructed; an ordered slice of them forms the conversation.
type Message struct {
	Role    string `json:"role" bson:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" bson:"content"`
}

// ChatRequest is the normalized request shape handed to the chat pipeline.
// Temperature and MaxTokens are pointers so "not set" can be distinguished
// from an explicit zero; defaults are applied by the service layer.
type ChatRequest struct {
	Messages    []Message `json:"messages" validate:"required,min=1,dive"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

// Usage holds the token counters a provider reported for one generation.
// Field names are normalized across providers; a provider that reports no
// usage leaves the whole struct out (nil), never zero-filled.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ResponseMeta carries provenance and timing for a generated reply.
type ResponseMeta struct {
	Provider       string  `json:"provider"`
	Model          string  `json:"model"`
	Usage          *Usage  `json:"usage,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
}

// ChatResponse is the normalized result of a chat generation. The message
// role is always "assistant".
type ChatResponse struct {
	Message Message      `json:"message"`
	Meta    ResponseMeta `json:"meta"`
}

// Story section keys. Every story carries all five; missing values default
// to the empty string at creation.
const (
	SectionGuidingNarrative = "guidingNarrative"
	SectionTurningPoints    = "turningPoints"
	SectionEmergingThemes   = "emergingThemes"
	SectionUniqueStrengths  = "uniqueStrengths"
	SectionFutureVision     = "futureVision"
)

// DefaultSections returns a fresh section map with all five fixed keys set
// to the empty string.
func DefaultSections() map[string]string {
	return map[string]string{
		SectionGuidingNarrative: "",
		SectionTurningPoints:    "",
		SectionEmergingThemes:   "",
		SectionUniqueStrengths:  "",
		SectionFutureVision:     "",
	}
}

// Story is a versioned, section-structured reflective document tied to a
// client identifier. It is mutated only through the save operation, which
// bumps the version and appends the pre-update state to History.
type Story struct {
	StoryID        string            `json:"storyId" bson:"storyId"`
	ClientID       string            `json:"clientId" bson:"clientId"`
	Version        int               `json:"version" bson:"version"`
	Sections       map[string]string `json:"sections" bson:"sections"`
	ResonanceScore *float64          `json:"resonanceScore" bson:"resonanceScore"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
	History        []HistorySnapshot `json:"history" bson:"history"`
}

// HistorySnapshot captures a story's state immediately before a save.
// Timestamp is the previous UpdatedAt (CreatedAt for the first save).
type HistorySnapshot struct {
	Version        int               `json:"version" bson:"version"`
	Sections       map[string]string `json:"sections" bson:"sections"`
	ResonanceScore *float64          `json:"resonanceScore" bson:"resonanceScore"`
	Timestamp      time.Time         `json:"timestamp" bson:"timestamp"`
}

// StatusCheck is a minimal liveness record written by clients.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
