package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of scoring events
type EventType string

const (
	EventSubmissionScored EventType = "submission.scored"
)

const (
	eventSource  = "ielts-reading-service"
	eventVersion = "1.0"
)

// Event is the envelope shared by every published event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type SubmissionScoredEvent struct {
	SubmissionID   string `json:"submission_id"`
	SessionID      string `json:"session_id"`
	TestID         string `json:"test_id"`
	StudentID      string `json:"student_id,omitempty"`
	CorrectAnswers int    `json:"correct_answers"`
	TotalQuestions int    `json:"total_questions"`
	BandScore      string `json:"band_score"`
}

// NewSubmissionScoredEvent wraps a scoring outcome in an event envelope
func NewSubmissionScoredEvent(data SubmissionScoredEvent) *Event {
	return &Event{
		ID:        GenerateEventID(),
		Type:      EventSubmissionScored,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func GenerateEventID() string {
	return uuid.NewString()
}
