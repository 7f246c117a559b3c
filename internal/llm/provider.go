package llm

import (
	"context"

	"inner-story/backend/internal/model"
)

// Identity names one of the supported AI providers. The set is fixed; a
// value outside it is rejected by the registry.
type Identity string

const (
	ProviderOpenAI    Identity = "openai"
	ProviderAnthropic Identity = "anthropic"
	ProviderGemini    Identity = "gemini"
)

// Identities returns the supported providers in credential-probe priority
// order.
func Identities() []Identity {
	return []Identity{ProviderOpenAI, ProviderAnthropic, ProviderGemini}
}

// Provider is the capability every vendor adapter implements: turn a
// normalized conversation into a normalized assistant reply. Adapters are
// constructed from a ProviderSnapshot, so a Provider value is bound to the
// configuration that was current when its request began.
type Provider interface {
	Identity() Identity
	GenerateChat(ctx context.Context, messages []model.Message, temperature float64, maxTokens int) (*model.ChatResponse, error)
}

// systemPreamble is injected into every generation, through whatever
// mechanism the vendor offers for system content. The wording establishes a
// non-clinical, supportive reflection companion and points to professional
// help in crisis contexts.
const systemPreamble = "You are a supportive AI assistant for personal reflection and emotional well-being.\n" +
	"- You are not a licensed clinician and do not provide medical advice.\n" +
	"- Focus on reflective listening, validation, and open-ended questions.\n" +
	"- Encourage reaching out to professionals or emergency resources in crisis."
