package models

import (
	"time"

	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission is the latest set of answers a session handed in.
// A session owns at most one submission.
type Submission struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID      string    `json:"session_id" gorm:"size:100;not null;uniqueIndex"`
	TestID         uuid.UUID `json:"test_id" gorm:"type:uuid;index"`
	StudentID      string    `json:"student_id,omitempty" gorm:"size:100;index"`
	OrganizationID string    `json:"organization_id,omitempty" gorm:"size:100"`
	TotalQuestions int       `json:"total_questions"`

	// Scoring outcome, set once the submission is processed
	IsProcessed    bool    `json:"is_processed" gorm:"default:false;index"`
	CorrectAnswers *int    `json:"correct_answers,omitempty"`
	BandScore      *string `json:"band_score,omitempty" gorm:"size:4"`

	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Answers []StudentAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

type StudentAnswer struct {
	ID             uuid.UUID                             `json:"id" gorm:"type:uuid;primaryKey"`
	SubmissionID   uuid.UUID                             `json:"submission_id" gorm:"type:uuid;not null;index"`
	SessionID      string                                `json:"session_id" gorm:"size:100;index"`
	QuestionNumber int                                   `json:"question_number" gorm:"not null"`
	QuestionTypeID *uuid.UUID                            `json:"question_type_id,omitempty" gorm:"type:uuid"`
	Answer         datatypes.JSONType[scoring.RawAnswer] `json:"answer" gorm:"type:jsonb"`
	IsCorrect      *bool                                 `json:"is_correct,omitempty"`
	ScoredAt       *time.Time                            `json:"scored_at,omitempty"`
}

func (Submission) TableName() string {
	return "reading_submissions"
}

func (StudentAnswer) TableName() string {
	return "reading_student_answers"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (a *StudentAnswer) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// StudentAnswers collects the stored answers into the comparator's input map.
// A later row for the same question wins.
func (s *Submission) StudentAnswers() scoring.StudentAnswers {
	out := make(scoring.StudentAnswers, len(s.Answers))
	for _, a := range s.Answers {
		out[scoring.QuestionKey(a.QuestionNumber)] = a.Answer.Data()
	}
	return out
}

// AllModels lists every table the service migrates.
func AllModels() []interface{} {
	return []interface{}{
		&ReadingTest{},
		&Passage{},
		&QuestionType{},
		&Submission{},
		&StudentAnswer{},
	}
}
