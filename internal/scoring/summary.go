package scoring

import (
	"fmt"
	"math"
)

// TypeBreakdown is the performance on one question type.
type TypeBreakdown struct {
	Total      int     `json:"total"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

// Summary carries the derived figures shown alongside a Result.
type Summary struct {
	IncorrectAnswers      int                      `json:"incorrect_answers"`
	AnsweredQuestions     int                      `json:"answered_questions"`
	Percentage            float64                  `json:"percentage"`
	OverallGrade          string                   `json:"overall_grade"`
	QuestionTypeBreakdown map[string]TypeBreakdown `json:"question_type_breakdown"`
}

type gradeThreshold struct {
	minPercentage float64
	grade         string
}

var letterGrades = []gradeThreshold{
	{90, "A+"},
	{80, "A"},
	{70, "B+"},
	{60, "B"},
	{50, "C+"},
	{40, "C"},
	{30, "D"},
}

// LetterGrade maps a percentage to the letter grade reported with results.
func LetterGrade(percentage float64) string {
	for _, t := range letterGrades {
		if percentage >= t.minPercentage {
			return t.grade
		}
	}
	return "F"
}

// Summarize derives the percentage, letter grade and per-type breakdown of a
// result.
func Summarize(r Result) Summary {
	summary := Summary{
		IncorrectAnswers:      r.TotalQuestions - r.CorrectAnswers,
		QuestionTypeBreakdown: make(map[string]TypeBreakdown),
	}

	var rawPercentage float64
	if r.TotalQuestions > 0 {
		rawPercentage = float64(r.CorrectAnswers) / float64(r.TotalQuestions) * 100
	}
	summary.Percentage = round2(rawPercentage)
	summary.OverallGrade = LetterGrade(rawPercentage)

	for _, row := range r.AnswersDetail {
		if !isBlank(row.StudentAnswer) {
			summary.AnsweredQuestions++
		}
		b := summary.QuestionTypeBreakdown[row.QuestionType]
		b.Total++
		if row.IsCorrect {
			b.Correct++
		}
		summary.QuestionTypeBreakdown[row.QuestionType] = b
	}
	for qt, b := range summary.QuestionTypeBreakdown {
		b.Percentage = round2(float64(b.Correct) / float64(b.Total) * 100)
		summary.QuestionTypeBreakdown[qt] = b
	}

	return summary
}

// Display renders the row for review screens.
func (r DetailRow) Display() string {
	studentDisplay := r.StudentAnswer
	if isBlank(studentDisplay) {
		studentDisplay = "No Answer"
	}
	correctDisplay := r.CorrectAnswer
	if correctDisplay == "" {
		correctDisplay = "Not Available"
	}

	symbol, status := "❌", "Incorrect"
	if r.IsCorrect {
		symbol, status = "✔", "Correct"
	}

	return fmt.Sprintf("Student Answer: %s | Correct Answer: %s | Result: %s (%s)",
		studentDisplay, correctDisplay, symbol, status)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
