package resolve

import (
	"context"

	"skill-tracking-assistant/pkg/llmprovider"
	pkgLog "skill-tracking-assistant/pkg/log"
)

const resolverTemperature = 0.1

// Generator is the completion surface the resolver needs; satisfied by
// *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Resolver obtains a structured decision from the completion service with a
// bounded context, recovering from malformed output via the parse chain.
type Resolver struct {
	llm Generator
	l   pkgLog.Logger
}

// New creates a Resolver.
func New(llm Generator, l pkgLog.Logger) *Resolver {
	return &Resolver{llm: llm, l: l}
}

// Resolve makes one completion call and returns a Decision. It never fails:
// service errors, empty output and unparseable output all collapse into the
// fixed low-confidence chat fallback.
func (r *Resolver) Resolve(ctx context.Context, input Input) Decision {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: DecisionSystemPrompt},
		Messages: []llmprovider.Message{
			{Role: "user", Text: buildUserPrompt(input)},
		},
		Temperature: resolverTemperature,
	}

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		r.l.Warnf(ctx, "resolve: completion call failed: %v", err)
		return fallbackDecision()
	}

	if resp == nil || resp.Text == "" {
		r.l.Warnf(ctx, "resolve: empty completion response")
		return fallbackDecision()
	}

	raw, err := parseDecision(resp.Text)
	if err != nil {
		r.l.Warnf(ctx, "resolve: %v (raw=%q)", err, resp.Text)
		return fallbackDecision()
	}

	decision := normalize(raw)
	r.l.Infof(ctx, "resolve: action=%s confidence=%.2f", decision.Action(), decision.Meta().Confidence)
	return decision
}
