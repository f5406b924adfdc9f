// Package assistant produces recipe suggestions from a shop's ingredients
// using a text-generation model. Failures never reach the caller: they are
// replaced by a fixed apology.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// SystemInstruction sets the assistant's persona.
	SystemInstruction = "You are a helpful and cheerful shop assistant who loves cooking."

	// EmptyFallback is returned when the model produced no text.
	EmptyFallback = "Sorry, I couldn't come up with a recipe right now. Try picking some veggies!"

	// ErrorFallback is returned when the model call failed.
	ErrorFallback = "Our AI chef is currently on a break. Please try again later."

	defaultQuery = "Suggest a popular Indian dish."
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// GeneratorFunc adapts a function to a Generator.
type GeneratorFunc func(ctx context.Context, prompt, systemInstruction string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	return f(ctx, prompt, systemInstruction)
}

// Assistant suggests recipes.
type Assistant struct {
	generator Generator
	logger    zerolog.Logger
}

// New creates an assistant backed by generator.
func New(generator Generator, logger zerolog.Logger) *Assistant {
	return &Assistant{
		generator: generator,
		logger:    logger.With().Str("component", "assistant").Logger(),
	}
}

// Suggest returns a short recipe idea using some of itemNames, guided by the
// optional query. It always returns text.
func (a *Assistant) Suggest(ctx context.Context, itemNames []string, query string) (suggestion string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Msg("recipe generator panicked")
			suggestion = ErrorFallback
		}
	}()

	prompt := BuildPrompt(itemNames, query)

	text, err := a.generator.Generate(ctx, prompt, SystemInstruction)
	if err != nil {
		a.logger.Warn().Err(err).Int("items", len(itemNames)).Msg("recipe suggestion failed")
		return ErrorFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Warn().Int("items", len(itemNames)).Msg("recipe suggestion was empty")
		return EmptyFallback
	}

	a.logger.Debug().Int("items", len(itemNames)).Int("length", len(text)).Msg("recipe suggested")
	return text
}

// BuildPrompt assembles the model prompt from the available ingredients and
// the shopper's question.
func BuildPrompt(itemNames []string, query string) string {
	userQuery := defaultQuery
	if q := strings.TrimSpace(query); q != "" {
		userQuery = fmt.Sprintf("The user specifically asks: %q", q)
	}

	var b strings.Builder
	b.WriteString("You are a smart culinary assistant for a vegetable shop app called FreshVegies.in.\n")
	fmt.Fprintf(&b, "Here is a list of available fresh ingredients in the shop: %s.\n\n", strings.Join(itemNames, ", "))
	b.WriteString(userQuery)
	b.WriteString("\n\n")
	b.WriteString("Based on the available ingredients, suggest a concise recipe idea.\n")
	b.WriteString("Mention which ingredients from the shop can be used.\n")
	b.WriteString("Keep it short (under 100 words) and appetizing.\n")
	b.WriteString("Format the output as simple text, no markdown code blocks.\n")
	return b.String()
}
