package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SpaceStatusActive   = "active"
	SpaceStatusInactive = "inactive"
)

// Space - пространство поддержки (援助空间). Tags хранится строкой через
// запятую, как его вводят на форме.
type Space struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	AdditionalNote string    `json:"additional_note,omitempty"`
	Tags           string    `json:"tags"`
	Lat            *float64  `json:"lat"`
	Lng            *float64  `json:"lng"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Space) HasLocation() bool {
	return s.Lat != nil && s.Lng != nil
}
