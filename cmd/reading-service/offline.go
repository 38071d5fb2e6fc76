package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Grade a student answer file against an answer key file",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	f := cmd.Flags()
	f.String("answers", "", "Student answers JSON file ({\"1\": \"A\", \"2\": [\"B\", \"C\"]})")
	f.String("key", "", "Answer key JSON file ({\"1\": {\"correct_answer\": \"A\"}})")
	f.Bool("summary", false, "Include percentage, grade and per-type breakdown")
	f.Bool("verbose", false, "Log every grading decision to stderr")

	_ = cmd.MarkFlagRequired("answers")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func bandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "band <correct-count>",
		Short: "Print the band score for a number of correct answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err == nil {
				err = validator.New().Var(count, "correct_count")
			}
			if err != nil {
				return fmt.Errorf("correct count must be an integer between 0 and %d, got %q", scoring.TotalQuestions, args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), scoring.BandScore(count))
			return err
		},
	}
}

func runCompare(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)

	var answers scoring.StudentAnswers
	if err := readJSONFile(v.GetString("answers"), &answers); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	var key scoring.AnswerKey
	if err := readJSONFile(v.GetString("key"), &key); err != nil {
		return fmt.Errorf("read answer key: %w", err)
	}

	var opts []scoring.Option
	if v.GetBool("verbose") {
		opts = append(opts, scoring.WithObserver(scoring.NewLogObserver(utils.NewLogger("development", cmd.ErrOrStderr()))))
	}
	result := scoring.CompareAnswers(answers, key, opts...)

	var out interface{} = result
	if v.GetBool("summary") {
		out = services.ComparisonReport{Result: result, Summary: scoring.Summarize(result)}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readJSONFile(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// viperForCmd binds a command's flags and the READING_* environment to a
// fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("READING")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}
