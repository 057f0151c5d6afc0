package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
)

func newTestAdvisoryLogRepo(t *testing.T) (*advisoryLogRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &advisoryLogRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveInteraction(t *testing.T) {
	repo, mock, db := newTestAdvisoryLogRepo(t)
	defer db.Close()

	userID := int64(3)
	entry := models.AdvisoryLogEntry{
		UserID:     &userID,
		PromptUsed: "family SUV under 100k",
		LLMAnswer:  "Consider a Honda HR-V.",
		LLMModel:   "gemini-2.0-flash",
	}

	mock.ExpectExec("INSERT INTO llm_register").
		WithArgs(entry.UserID, entry.PromptUsed, entry.LLMAnswer, entry.LLMModel).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveInteraction(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveInteraction_AnonymousUser(t *testing.T) {
	repo, mock, db := newTestAdvisoryLogRepo(t)
	defer db.Close()

	entry := models.AdvisoryLogEntry{
		PromptUsed: "cheap city hatchback",
		LLMAnswer:  "Sorry, the car advisor is unavailable right now. Please try again later.",
		LLMModel:   "gemini-2.0-flash",
	}

	mock.ExpectExec("INSERT INTO llm_register").
		WithArgs(nil, entry.PromptUsed, entry.LLMAnswer, entry.LLMModel).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveInteraction(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveInteraction_ExecError(t *testing.T) {
	repo, mock, db := newTestAdvisoryLogRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO llm_register").
		WillReturnError(errors.New("connection refused"))

	err := repo.SaveInteraction(context.Background(), models.AdvisoryLogEntry{PromptUsed: "anything"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
