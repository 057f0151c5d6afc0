package store

import (
	"context"
	"fmt"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
)

// advisoryLogRepository persists text-generation interactions into the
// "llm_register" table. Writes are best effort: the advisory service
// swallows any error returned here.
type advisoryLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdvisoryLogRepository constructs an [AdvisoryLogRepository] backed by
// the provided database connection and logger.
func NewAdvisoryLogRepository(db *DB, logger *logger.Logger) AdvisoryLogRepository {
	logger.Debug().Msg("creating advisory log repository")
	return &advisoryLogRepository{
		db:     db,
		logger: logger,
	}
}

// SaveInteraction inserts one log row for an advisory call attempt,
// success and failure responses alike. UserID may be nil.
func (r *advisoryLogRepository) SaveInteraction(ctx context.Context, entry models.AdvisoryLogEntry) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveAdvisoryLog, entry.UserID, entry.PromptUsed, entry.LLMAnswer, entry.LLMModel); err != nil {
		log.Err(err).Str("func", "*advisoryLogRepository.SaveInteraction").Msg("error: inserting llm_register row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
