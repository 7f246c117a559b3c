package llm

import (
	"fmt"
	"net/http"
	"strings"

	"inner-story/backend/internal/config"
	app_errors "inner-story/backend/internal/errors"
)

// Select resolves which provider should handle a request, from a single
// configuration snapshot. The policy, in order:
//
//  1. an explicit AI_PROVIDER override naming a known identity wins;
//  2. otherwise the first identity with a configured credential, probing
//     openai, anthropic, gemini in that order;
//  3. otherwise openai.
//
// Select is pure and deterministic for a given snapshot. It never validates
// the credential itself; a missing key for the chosen provider surfaces later
// as ErrConfiguration.
func Select(snap config.ProviderSnapshot) Identity {
	override := Identity(strings.ToLower(strings.TrimSpace(snap.Override)))
	switch override {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		return override
	}

	if snap.OpenAIKey != "" {
		return ProviderOpenAI
	}
	if snap.AnthropicKey != "" {
		return ProviderAnthropic
	}
	if snap.GoogleKey != "" {
		return ProviderGemini
	}

	return ProviderOpenAI
}

// Builder constructs a provider adapter bound to one configuration snapshot.
// The shared http.Client carries the outbound timeout.
type Builder func(snap config.ProviderSnapshot, client *http.Client) Provider

// Registry maps provider identities to adapter builders. Adapters are built
// per request so each call sees the snapshot its request started with.
type Registry struct {
	httpClient *http.Client
	builders   map[Identity]Builder
}

// NewRegistry returns a registry with all three vendor adapters registered,
// sharing the given HTTP client.
func NewRegistry(client *http.Client) *Registry {
	if client == nil {
		client = http.DefaultClient
	}
	return &Registry{
		httpClient: client,
		builders: map[Identity]Builder{
			ProviderOpenAI: func(snap config.ProviderSnapshot, c *http.Client) Provider {
				return NewOpenAIProvider(snap, c)
			},
			ProviderAnthropic: func(snap config.ProviderSnapshot, c *http.Client) Provider {
				return NewAnthropicProvider(snap, c)
			},
			ProviderGemini: func(snap config.ProviderSnapshot, c *http.Client) Provider {
				return NewGeminiProvider(snap, c)
			},
		},
	}
}

// WithBuilder replaces (or disables, when b is nil) the builder for one
// identity and returns the registry for chaining. Used by the wiring layer
// and by tests to substitute fakes.
func (r *Registry) WithBuilder(id Identity, b Builder) *Registry {
	r.builders[id] = b
	return r
}

// ClientFor builds the adapter for the given identity against the given
// snapshot. An identity outside the fixed set yields ErrUnsupportedProvider;
// a registered identity whose builder slot is nil yields
// ErrIntegrationUnavailable.
func (r *Registry) ClientFor(id Identity, snap config.ProviderSnapshot) (Provider, error) {
	b, ok := r.builders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUnsupportedProvider, id)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s client is not usable in this runtime", app_errors.ErrIntegrationUnavailable, id)
	}
	return b(snap, r.httpClient), nil
}
