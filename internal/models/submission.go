package models

import (
	"time"

	"github.com/google/uuid"
)

// Scenario - структурированный контекст истории: где произошло и кого
// отметить. Тексты praise/criticism действительны только при включенных
// флагах show*.
type Scenario struct {
	Tags          []string `json:"tags,omitempty"`
	Praise        string   `json:"praise,omitempty"`
	Criticism     string   `json:"criticism,omitempty"`
	ShowPraise    bool     `json:"showPraise"`
	ShowCriticism bool     `json:"showCriticism"`
}

// Submission - одна опубликованная история с координатами и оценкой.
// Координаты либо заданы обе, либо обе отсутствуют.
type Submission struct {
	ID           uuid.UUID `json:"id"`
	Lat          *float64  `json:"lat"`
	Lng          *float64  `json:"lng"`
	HereHappened string    `json:"here_happened"`
	Description  string    `json:"description"`
	FeelingScore int       `json:"feeling_score"`
	ViolenceType []string  `json:"violence_type,omitempty"`
	Scenario     Scenario  `json:"scenario"`
	Region       string    `json:"region"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasLocation сообщает, размечена ли история на карте
func (s *Submission) HasLocation() bool {
	return s.Lat != nil && s.Lng != nil
}
