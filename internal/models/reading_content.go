package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReadingTest is one Academic Reading test: up to three passages, 40 questions.
type ReadingTest struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID string    `json:"organization_id" gorm:"size:100;index"`
	Title          string    `json:"title" gorm:"not null;size:200"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Passages []Passage `json:"passages,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
}

type Passage struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TestID uuid.UUID `json:"test_id" gorm:"type:uuid;not null;index"`
	Title  string    `json:"title" gorm:"size:200"`
	Text   string    `json:"text" gorm:"type:text"`
	Order  int       `json:"order" gorm:"not null;default:0"`

	// Relations
	QuestionTypes []QuestionType `json:"question_types,omitempty" gorm:"foreignKey:PassageID;constraint:OnDelete:CASCADE"`
}

// QuestionType groups the questions of one IELTS task type inside a passage.
// Questions are stored inline as JSON in the order they are presented.
type QuestionType struct {
	ID                  uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey"`
	PassageID           uuid.UUID                         `json:"passage_id" gorm:"type:uuid;not null;index"`
	Type                string                            `json:"type" gorm:"size:100;not null"`
	Title               string                            `json:"title" gorm:"size:200"`
	InstructionTemplate string                            `json:"instruction_template" gorm:"type:text"`
	ExpectedRange       string                            `json:"expected_range" gorm:"size:20"`
	StudentRange        string                            `json:"student_range" gorm:"size:20"`
	ActualCount         int                               `json:"actual_count"`
	QuestionsData       datatypes.JSONSlice[QuestionItem] `json:"questions_data" gorm:"type:jsonb"`
	Order               int                               `json:"order" gorm:"not null;default:0"`
}

// QuestionItem is one question inside QuestionType.QuestionsData
type QuestionItem struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Answer  string   `json:"answer"`
	Options []string `json:"options,omitempty"`
}

func (ReadingTest) TableName() string {
	return "reading_tests"
}

func (Passage) TableName() string {
	return "reading_passages"
}

func (QuestionType) TableName() string {
	return "reading_question_types"
}

func (t *ReadingTest) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

func (p *Passage) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

func (q *QuestionType) BeforeCreate(tx *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
