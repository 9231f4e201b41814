package discord

import (
	"go.uber.org/zap"

	"greeter/internal/ports/input"
	"greeter/internal/ports/output"
)

// Handler handles Discord interactions using the greeting use case.
type Handler struct {
	greetings  input.GreetingUseCase
	translator output.Translator
	logger     *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	greetings input.GreetingUseCase,
	translator output.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		greetings:  greetings,
		translator: translator,
		logger:     logger,
	}
}
