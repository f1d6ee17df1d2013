package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment - отклик читателя на историю. Наружу отдаются только видимые
// комментарии, новые сверху.
type Comment struct {
	ID           uuid.UUID `json:"id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	Text         string    `json:"text"`
	Visible      bool      `json:"visible"`
	CreatedAt    time.Time `json:"created_at"`
}
