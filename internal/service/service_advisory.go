package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/autovenda/go-car-market/internal/advisor"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
	"github.com/autovenda/go-car-market/models"
)

// advisoryFallback is returned whenever the text-generation collaborator
// fails or produces an empty completion.
const advisoryFallback = "Sorry, the car advisor is unavailable right now. Please try again later."

// advisoryPrompt wraps the raw user preferences into the instruction sent to
// the generative model.
const advisoryPrompt = "You are a helpful used-car shopping assistant. " +
	"Based on the following customer preferences, suggest a suitable used car " +
	"(make, model, approximate year range and price range) and briefly explain why it fits. " +
	"Customer preferences: %s"

// advisoryService is the concrete implementation of [AdvisoryService].
type advisoryService struct {
	client        advisor.Client
	logRepository store.AdvisoryLogRepository
	logger        *logger.Logger
}

// NewAdvisoryService constructs an [AdvisoryService] around the given
// generation client. Interactions are recorded through logRepository on a
// best-effort basis.
func NewAdvisoryService(client advisor.Client, logRepository store.AdvisoryLogRepository, logger *logger.Logger) AdvisoryService {
	return &advisoryService{
		client:        client,
		logRepository: logRepository,
		logger:        logger,
	}
}

// Suggest asks the generative model for a car recommendation matching the
// given free-text preferences. It never fails: any collaborator error or
// empty completion degrades into a fixed fallback text. The interaction,
// fallback included, is persisted to the llm_register table; a failed insert
// is logged and swallowed.
func (s *advisoryService) Suggest(ctx context.Context, preferences string, userID *int64) string {
	log := logger.FromContext(ctx)

	prompt := fmt.Sprintf(advisoryPrompt, preferences)

	answer, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.Err(err).Msg("advisory generation failed, serving fallback")
		answer = advisoryFallback
	} else if strings.TrimSpace(answer) == "" {
		log.Warn().Msg("advisory generation returned empty completion, serving fallback")
		answer = advisoryFallback
	}

	entry := models.AdvisoryLogEntry{
		UserID:     userID,
		PromptUsed: prompt,
		LLMAnswer:  answer,
		LLMModel:   s.client.Model(),
	}
	if err := s.logRepository.SaveInteraction(ctx, entry); err != nil {
		log.Err(err).Msg("advisory interaction logging failed")
	}

	return answer
}
