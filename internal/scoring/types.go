package scoring

import "strconv"

// TotalQuestions is the fixed length of an IELTS Academic Reading test.
const TotalQuestions = 40

// UnknownQuestionType labels detail rows whose answer key carries no type.
const UnknownQuestionType = "Unknown"

// KeyEntry is the authored answer for one globally numbered question.
type KeyEntry struct {
	CorrectAnswer        string `json:"correct_answer"`
	QuestionType         string `json:"question_type,omitempty"`
	PassageID            string `json:"passage_id,omitempty"`
	QuestionTypeID       string `json:"question_type_id,omitempty"`
	LocalQuestionNumber  int    `json:"local_question_number,omitempty"`
	GlobalQuestionNumber int    `json:"global_question_number,omitempty"`
}

// AnswerKey maps a question number ("1".."40") to its key entry.
type AnswerKey map[string]KeyEntry

// StudentAnswers maps a question number ("1".."40") to the submitted value.
type StudentAnswers map[string]RawAnswer

// QuestionKey renders a question number as a map key.
func QuestionKey(number int) string {
	return strconv.Itoa(number)
}

// DetailRow is the grading outcome for one question.
type DetailRow struct {
	QuestionNumber int    `json:"question_number"`
	StudentAnswer  string `json:"student_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	QuestionType   string `json:"question_type"`
}

// Result is the aggregate of a 40-question comparison.
type Result struct {
	TotalQuestions int         `json:"total_questions"`
	CorrectAnswers int         `json:"correct_answers"`
	BandScore      string      `json:"band_score"`
	AnswersDetail  []DetailRow `json:"answers_detail"`
}
