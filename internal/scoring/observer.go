package scoring

// LevelLogger is the subset of a structured logger used by LogObserver.
// Both *slog.Logger and utils.Logger satisfy it.
type LevelLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type logObserver struct {
	logger LevelLogger
}

// NewLogObserver logs each decision at debug level and the aggregate at info.
func NewLogObserver(logger LevelLogger) Observer {
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveDecision(d Decision) {
	o.logger.Debug("Graded question",
		"question_number", d.Row.QuestionNumber,
		"student_answer", d.Row.StudentAnswer,
		"correct_answer", d.Row.CorrectAnswer,
		"is_correct", d.Row.IsCorrect,
		"rule", d.Rule)
}

func (o *logObserver) ObserveResult(r Result) {
	o.logger.Info("Compared answers",
		"correct_answers", r.CorrectAnswers,
		"total_questions", r.TotalQuestions,
		"band_score", r.BandScore)
}
