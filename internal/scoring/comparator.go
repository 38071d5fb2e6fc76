package scoring

import "strings"

// Decision describes how one question was graded.
type Decision struct {
	Rule Rule
	Row  DetailRow
}

// Observer receives grading decisions after they are made. Implementations
// must not retain the Result's slices beyond the call.
type Observer interface {
	ObserveDecision(d Decision)
	ObserveResult(r Result)
}

type nopObserver struct{}

func (nopObserver) ObserveDecision(Decision) {}
func (nopObserver) ObserveResult(Result)     {}

type options struct {
	observer Observer
}

type Option func(*options)

// WithObserver attaches an observer to a comparison run.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// CompareAnswers grades every question slot from 1 to 40. Absent student
// answers and absent key entries are graded as incorrect; the comparison
// never fails.
func CompareAnswers(student StudentAnswers, key AnswerKey, opts ...Option) Result {
	cfg := options{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	result := Result{
		TotalQuestions: TotalQuestions,
		AnswersDetail:  make([]DetailRow, 0, TotalQuestions),
	}

	for number := 1; number <= TotalQuestions; number++ {
		k := QuestionKey(number)
		answer := student[k]
		entry := key[k]
		correct := strings.TrimSpace(entry.CorrectAnswer)

		isCorrect, rule := decide(answer.String(), correct)
		if isCorrect {
			result.CorrectAnswers++
		}

		questionType := entry.QuestionType
		if questionType == "" {
			questionType = UnknownQuestionType
		}

		row := DetailRow{
			QuestionNumber: number,
			StudentAnswer:  answer.String(),
			CorrectAnswer:  correct,
			IsCorrect:      isCorrect,
			QuestionType:   questionType,
		}
		result.AnswersDetail = append(result.AnswersDetail, row)
		cfg.observer.ObserveDecision(Decision{Rule: rule, Row: row})
	}

	result.BandScore = BandScore(result.CorrectAnswers)
	cfg.observer.ObserveResult(result)

	return result
}
