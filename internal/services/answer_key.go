package services

import (
	"fmt"
	"slices"

	"github.com/academiq/ielts-reading-service/internal/models"
	"github.com/academiq/ielts-reading-service/internal/scoring"
)

// BuildAnswerKey flattens a test into the 40-question answer key. Passages
// and question types are walked by ascending order, questions in stored
// order, and numbering stops at 40.
func BuildAnswerKey(test *models.ReadingTest) scoring.AnswerKey {
	key := make(scoring.AnswerKey, scoring.TotalQuestions)
	if test == nil {
		return key
	}

	number := 1
	for _, passage := range sortedPassages(test.Passages) {
		for _, qt := range sortedQuestionTypes(passage.QuestionTypes) {
			for _, item := range qt.QuestionsData {
				if number > scoring.TotalQuestions {
					return key
				}
				key[scoring.QuestionKey(number)] = scoring.KeyEntry{
					CorrectAnswer:        item.Answer,
					QuestionType:         qt.Type,
					PassageID:            passage.ID.String(),
					QuestionTypeID:       qt.ID.String(),
					LocalQuestionNumber:  localNumber(item),
					GlobalQuestionNumber: number,
				}
				number++
			}
		}
	}
	return key
}

// localNumber is the number authored inside the question type, 1 when unset.
func localNumber(item models.QuestionItem) int {
	if item.Number <= 0 {
		return 1
	}
	return item.Number
}

// AssignStudentRanges sets StudentRange on every question type to the
// global "start-end" span it occupies. Empty question types keep an empty
// range. Passages and question types are sorted in place.
func AssignStudentRanges(test *models.ReadingTest) {
	slices.SortStableFunc(test.Passages, func(a, b models.Passage) int { return a.Order - b.Order })

	next := 1
	for i := range test.Passages {
		qts := test.Passages[i].QuestionTypes
		slices.SortStableFunc(qts, func(a, b models.QuestionType) int { return a.Order - b.Order })

		for j := range qts {
			count := len(qts[j].QuestionsData)
			qts[j].ActualCount = count
			if count == 0 {
				qts[j].StudentRange = ""
				continue
			}
			qts[j].StudentRange = fmt.Sprintf("%d-%d", next, next+count-1)
			next += count
		}
	}
}

func sortedPassages(passages []models.Passage) []models.Passage {
	out := slices.Clone(passages)
	slices.SortStableFunc(out, func(a, b models.Passage) int { return a.Order - b.Order })
	return out
}

func sortedQuestionTypes(qts []models.QuestionType) []models.QuestionType {
	out := slices.Clone(qts)
	slices.SortStableFunc(out, func(a, b models.QuestionType) int { return a.Order - b.Order })
	return out
}
