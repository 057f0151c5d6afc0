package models

import "time"

// AdvisoryLogEntry records one interaction with the text-generation
// service, success and failure responses alike. Persisting the entry is
// best effort: a missing log row must never fail the advisory call.
type AdvisoryLogEntry struct {
	EntryID int64 `json:"id"`

	// UserID is the requesting user, when known. Nil for anonymous calls.
	UserID *int64 `json:"user_id,omitempty"`

	PromptUsed string    `json:"prompt_used"`
	LLMAnswer  string    `json:"llm_answer"`
	LLMModel   string    `json:"llm_model"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AdvisoryLogEntry model.
func (a AdvisoryLogEntry) TableName() string {
	return "llm_register"
}
