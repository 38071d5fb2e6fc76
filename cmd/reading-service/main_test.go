package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBandCommand(t *testing.T) {
	out, err := execute(t, "band", "30")
	require.NoError(t, err)
	assert.Equal(t, "7.0", strings.TrimSpace(out))

	out, err = execute(t, "band", "0")
	require.NoError(t, err)
	assert.Equal(t, "2.0", strings.TrimSpace(out))
}

func TestBandCommand_Invalid(t *testing.T) {
	for _, arg := range []string{"41", "-1", "seven"} {
		_, err := execute(t, "band", arg)
		assert.Error(t, err, "arg %s", arg)
	}
}

func TestCompareCommand(t *testing.T) {
	answers := writeFile(t, "answers.json", `{"1": "A", "2": ["C", "B"], "3": "yes"}`)
	key := writeFile(t, "key.json", `{
		"1": {"correct_answer": "A", "question_type": "Multiple Choice Questions (MCQ)"},
		"2": {"correct_answer": "B,C"},
		"3": {"correct_answer": "TRUE", "question_type": "Yes/No/Not Given"}
	}`)

	out, err := execute(t, "compare", "--answers", answers, "--key", key, "--summary")
	require.NoError(t, err)

	var report services.ComparisonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 40, report.TotalQuestions)
	assert.Equal(t, 3, report.CorrectAnswers)
	assert.Equal(t, "2.0", report.BandScore)
	assert.Len(t, report.AnswersDetail, 40)
	assert.Equal(t, 7.5, report.Summary.Percentage)
}

func TestCompareCommand_MissingFlags(t *testing.T) {
	_, err := execute(t, "compare")
	assert.Error(t, err)
}

func TestCompareCommand_BadFile(t *testing.T) {
	answers := writeFile(t, "answers.json", `not json`)
	key := writeFile(t, "key.json", `{}`)

	_, err := execute(t, "compare", "--answers", answers, "--key", key)
	assert.ErrorContains(t, err, "read answers")
}
