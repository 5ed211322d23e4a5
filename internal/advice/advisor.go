// Package advice turns a client question plus profile context into
// coaching advice text. Providers are opaque to the rest of the app:
// they may call an external model, fail, or degrade to a canned
// response, and they never touch domain state.
package advice

import (
	"context"
	"fmt"
)

// Advisor produces advice text for a query in the light of a free-form
// user context string.
type Advisor interface {
	Advise(ctx context.Context, query, userContext string) (string, error)
}

const systemPrompt = "You are a professional, motivating, and elite fitness coach for 'Dream Body'. " +
	"Keep answers concise, actionable, and encouraging. Use metric units."

// degradedResponse is returned when a configured provider fails
// mid-flight and no fallback advisor is chained.
const degradedResponse = "Sorry, I'm having trouble connecting to the fitness mainframe right now. Please try again later."

// emptyResponse covers the provider answering with nothing at all.
const emptyResponse = "I couldn't generate a response at the moment."

func buildPrompt(query, userContext string) string {
	return fmt.Sprintf("User Context: %s\n\nUser Question: %s", userContext, query)
}

func degrade(ctx context.Context, fallback Advisor, query, userContext string) (string, error) {
	if fallback != nil {
		return fallback.Advise(ctx, query, userContext)
	}
	return degradedResponse, nil
}

// StaticAdvisor answers every question with a canned offline response.
// It is the terminal fallback when no provider is configured.
type StaticAdvisor struct{}

// NewStaticAdvisor returns the canned advisor.
func NewStaticAdvisor() *StaticAdvisor {
	return &StaticAdvisor{}
}

func (s *StaticAdvisor) Advise(ctx context.Context, query, userContext string) (string, error) {
	return fmt.Sprintf("I'm currently running in offline mode because the API Key is missing. "+
		"Typically, I would analyze your request: %q based on your profile and provide expert advice. "+
		"Please contact the owner to configure the AI integration.", query), nil
}

var _ Advisor = (*StaticAdvisor)(nil)
