// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: advisor.Client, store.AdvisoryLogRepository
// ─────────────────────────────────────────────

type mockAdvisorClient struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	model      string
}

func (m *mockAdvisorClient) Generate(ctx context.Context, prompt string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt)
	}
	return "", nil
}

func (m *mockAdvisorClient) Model() string {
	if m.model != "" {
		return m.model
	}
	return "test-model"
}

type mockAdvisoryLogRepository struct {
	saveInteractionFn func(ctx context.Context, entry models.AdvisoryLogEntry) error
}

func (m *mockAdvisoryLogRepository) SaveInteraction(ctx context.Context, entry models.AdvisoryLogEntry) error {
	if m.saveInteractionFn != nil {
		return m.saveInteractionFn(ctx, entry)
	}
	return nil
}

func TestAdvisoryService_Suggest_Success(t *testing.T) {
	var gotPrompt string
	var gotEntry models.AdvisoryLogEntry
	client := &mockAdvisorClient{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "A 2016 Honda Fit fits your budget.", nil
		},
		model: "gemini-2.5-flash",
	}
	logs := &mockAdvisoryLogRepository{
		saveInteractionFn: func(ctx context.Context, entry models.AdvisoryLogEntry) error {
			gotEntry = entry
			return nil
		},
	}
	svc := NewAdvisoryService(client, logs, logger.Nop())

	userID := int64(3)
	answer := svc.Suggest(context.Background(), "small economical city car under 50k", &userID)

	assert.Equal(t, "A 2016 Honda Fit fits your budget.", answer)
	assert.Contains(t, gotPrompt, "small economical city car under 50k")

	require.NotNil(t, gotEntry.UserID)
	assert.EqualValues(t, 3, *gotEntry.UserID)
	assert.Equal(t, "gemini-2.5-flash", gotEntry.LLMModel)
	assert.Equal(t, answer, gotEntry.LLMAnswer)
	assert.Equal(t, gotPrompt, gotEntry.PromptUsed)
}

func TestAdvisoryService_Suggest_FallbackOnError(t *testing.T) {
	var gotEntry models.AdvisoryLogEntry
	client := &mockAdvisorClient{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("upstream timed out")
		},
	}
	logs := &mockAdvisoryLogRepository{
		saveInteractionFn: func(ctx context.Context, entry models.AdvisoryLogEntry) error {
			gotEntry = entry
			return nil
		},
	}
	svc := NewAdvisoryService(client, logs, logger.Nop())

	answer := svc.Suggest(context.Background(), "anything", nil)

	assert.Equal(t, advisoryFallback, answer)
	// the fallback interaction is recorded too
	assert.Equal(t, advisoryFallback, gotEntry.LLMAnswer)
	assert.Nil(t, gotEntry.UserID)
}

func TestAdvisoryService_Suggest_FallbackOnEmptyCompletion(t *testing.T) {
	client := &mockAdvisorClient{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "   \n", nil
		},
	}
	svc := NewAdvisoryService(client, &mockAdvisoryLogRepository{}, logger.Nop())

	answer := svc.Suggest(context.Background(), "anything", nil)
	assert.Equal(t, advisoryFallback, answer)
}

func TestAdvisoryService_Suggest_LoggingFailureIsSwallowed(t *testing.T) {
	client := &mockAdvisorClient{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "A 2016 Honda Fit fits your budget.", nil
		},
	}
	logs := &mockAdvisoryLogRepository{
		saveInteractionFn: func(ctx context.Context, entry models.AdvisoryLogEntry) error {
			return errors.New("llm_register is unreachable")
		},
	}
	svc := NewAdvisoryService(client, logs, logger.Nop())

	answer := svc.Suggest(context.Background(), "anything", nil)
	assert.False(t, strings.Contains(answer, "unreachable"))
	assert.Equal(t, "A 2016 Honda Fit fits your budget.", answer)
}
