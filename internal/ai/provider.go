package ai

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ResponseFormatJSON asks a backend to produce a bare JSON object.
const ResponseFormatJSON = "json"

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
	defaultTimeout     = 60 * time.Second
)

var (
	ErrUnsupportedProvider = errors.New("unsupported ai provider")
	ErrProviderUnavailable = errors.New("ai provider unavailable")
)

// Request describes a single model invocation. Credential is supplied by the
// caller on every request and is never stored.
type Request struct {
	Provider       string
	Credential     string
	Prompt         string
	SystemMessage  string
	ResponseFormat string
	Temperature    float64
	MaxTokens      int
}

// Response is the uniform result of a model invocation. Transport and API
// failures are reported in-band: Success false plus Error, with a nil Go
// error from Call.
type Response struct {
	Content string `json:"content"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Config carries the caller-supplied provider selection and credential for
// one operation.
type Config struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
}

// Backend executes requests against one concrete provider API.
type Backend interface {
	Name() string
	Invoke(ctx context.Context, req Request) (string, error)
}

// Descriptor is the public listing entry for a provider.
type Descriptor struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	APIKeyURL   string `json:"apiKeyUrl"`
}

var descriptors = []Descriptor{
	{Name: "openai", DisplayName: "OpenAI", APIKeyURL: "https://platform.openai.com/account/api-keys"},
	{Name: "gemini", DisplayName: "Gemini (Google)", APIKeyURL: "https://aistudio.google.com/app/apikey"},
	{Name: "copilot", DisplayName: "Microsoft Copilot", APIKeyURL: "https://copilot.microsoft.com"},
	{Name: "deepseek", DisplayName: "DeepSeek", APIKeyURL: "https://platform.deepseek.com"},
}

// Providers returns the static provider registry.
func Providers() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Gateway routes requests to the registered backends with a bounded
// per-call timeout.
type Gateway struct {
	backends map[string]Backend
	timeout  time.Duration
}

// NewGateway builds a gateway over the given backends. With no backends it
// registers the full production set.
func NewGateway(timeout time.Duration, backends ...Backend) *Gateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if len(backends) == 0 {
		backends = []Backend{
			newOpenAIBackend(),
			newGeminiBackend(),
			newCopilotBackend(),
			newDeepSeekBackend(),
		}
	}

	m := make(map[string]Backend, len(backends))
	for _, b := range backends {
		m[b.Name()] = b
	}
	return &Gateway{backends: m, timeout: timeout}
}

// Supports reports whether the provider id is registered. It never touches
// the network.
func (g *Gateway) Supports(provider string) bool {
	_, ok := g.backends[provider]
	return ok
}

// Call executes the request against the named provider.
//
// An unknown provider id fails with ErrUnsupportedProvider before any
// network activity. A backend that is a known placeholder fails with
// ErrProviderUnavailable. Every other backend failure is folded into the
// Response so callers can degrade without error plumbing.
func (g *Gateway) Call(ctx context.Context, req Request) (Response, error) {
	backend, ok := g.backends[req.Provider]
	if !ok {
		return Response{}, fmt.Errorf("%w: %s", ErrUnsupportedProvider, req.Provider)
	}

	if req.Temperature == 0 {
		req.Temperature = defaultTemperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := backend.Invoke(ctx, req)
	if err != nil {
		if errors.Is(err, ErrProviderUnavailable) {
			return Response{Success: false, Error: err.Error()}, err
		}
		return Response{Success: false, Error: err.Error()}, nil
	}

	return Response{Content: content, Success: true}, nil
}
