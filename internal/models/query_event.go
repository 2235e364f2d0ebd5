package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryStatus is the terminal state of one submitted question.
type QueryStatus string

const (
	QueryStatusWarning QueryStatus = "warning"
	QueryStatusSuccess QueryStatus = "success"
	QueryStatusEmpty   QueryStatus = "empty"
	QueryStatusError   QueryStatus = "error"
)

// QueryEvent is the audit record placed on the query topic.
type QueryEvent struct {
	ID         string      `json:"id"`
	Question   string      `json:"question"`
	SQL        string      `json:"sql,omitempty"`
	Status     QueryStatus `json:"status"`
	Stage      string      `json:"stage,omitempty"`
	Error      string      `json:"error,omitempty"`
	RowCount   int         `json:"row_count"`
	Cached     bool        `json:"cached"`
	AskedAt    time.Time   `json:"asked_at"`
	DurationMS int64       `json:"duration_ms"`
}

// NewQueryEvent stamps a fresh id and the UTC time the question arrived.
func NewQueryEvent(question string, askedAt time.Time) QueryEvent {
	return QueryEvent{
		ID:       uuid.NewString(),
		Question: question,
		AskedAt:  askedAt.UTC(),
	}
}
