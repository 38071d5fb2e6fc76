package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const (
	answersSheet = "Answers"
	summarySheet = "Summary"
)

// ExportResults renders a session's comparison as an xlsx workbook with one
// row per question and a summary sheet.
func (s *gradingService) ExportResults(ctx context.Context, sessionID string) (data []byte, err error) {
	op := s.logger.WithOperation(ctx, "export_results", "submission")
	defer func() { op.LogResult(sessionID, err) }()

	submission, err := s.submissions.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report, err := s.compare(ctx, submission.TestID, submission.StudentAnswers())
	if err != nil {
		return nil, err
	}

	return buildResultsWorkbook(sessionID, report)
}

func buildResultsWorkbook(sessionID string, report *ComparisonReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", answersSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headers := []interface{}{"Question", "Question Type", "Student Answer", "Correct Answer", "Result"}
	if err := f.SetSheetRow(answersSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}

	for i, row := range report.AnswersDetail {
		result := "Incorrect"
		if row.IsCorrect {
			result = "Correct"
		}
		values := []interface{}{row.QuestionNumber, row.QuestionType, row.StudentAnswer, row.CorrectAnswer, result}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(answersSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row.QuestionNumber, err)
		}
	}

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Session ID", sessionID},
		{"Total Questions", report.TotalQuestions},
		{"Correct Answers", report.CorrectAnswers},
		{"Incorrect Answers", report.Summary.IncorrectAnswers},
		{"Answered Questions", report.Summary.AnsweredQuestions},
		{"Percentage", report.Summary.Percentage},
		{"Overall Grade", report.Summary.OverallGrade},
		{"Band Score", report.BandScore},
		{},
		{"Question Type", "Total", "Correct", "Percentage"},
	}
	for _, qt := range sortedTypeNames(report.Summary.QuestionTypeBreakdown) {
		b := report.Summary.QuestionTypeBreakdown[qt]
		summaryRows = append(summaryRows, []interface{}{qt, b.Total, b.Correct, b.Percentage})
	}

	for i, values := range summaryRows {
		if len(values) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedTypeNames(breakdown map[string]scoring.TypeBreakdown) []string {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
