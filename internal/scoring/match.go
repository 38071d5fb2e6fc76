package scoring

import (
	"slices"
	"strings"
)

// Rule identifies which step of the comparison decided a question.
type Rule string

const (
	RuleBlankAnswer  Rule = "blank_answer"
	RuleMissingKey   Rule = "missing_key"
	RuleExactMatch   Rule = "exact_match"
	RuleMultiAnswer  Rule = "multi_answer"
	RuleTrueFalseNG  Rule = "true_false_not_given"
	RuleTextFallback Rule = "text_fallback"
)

var tfngVocabulary = map[string]struct{}{
	"TRUE":      {},
	"FALSE":     {},
	"NOT GIVEN": {},
	"T":         {},
	"F":         {},
	"NG":        {},
	"YES":       {},
	"NO":        {},
}

// TRUE/YES and FALSE/NO share a canonical token so one matcher serves both
// the True/False/Not Given and Yes/No/Not Given families.
var tfngCanonical = map[string]string{
	"TRUE":  "T",
	"FALSE": "F",
	"YES":   "T",
	"NO":    "F",
}

// CompareSingle reports whether a student answer satisfies the correct answer.
func CompareSingle(student RawAnswer, correct string) bool {
	ok, _ := decide(student.String(), correct)
	return ok
}

// decide applies the comparison steps in fixed order; the first rule that
// applies wins.
func decide(student, correct string) (bool, Rule) {
	if isBlank(student) {
		return false, RuleBlankAnswer
	}
	if isBlank(correct) {
		return false, RuleMissingKey
	}

	studentNorm := Normalize(student)
	correctNorm := Normalize(correct)

	if studentNorm == correctNorm {
		return true, RuleExactMatch
	}
	if strings.ContainsAny(correctNorm, ",;") {
		return matchMultiAnswer(studentNorm, correctNorm), RuleMultiAnswer
	}
	if isTFNG(correctNorm) {
		return matchTFNG(studentNorm, correctNorm), RuleTrueFalseNG
	}
	return strings.EqualFold(studentNorm, correctNorm), RuleTextFallback
}

// matchMultiAnswer compares comma-separated selections ignoring order. The
// multiplicity of each selection must match.
func matchMultiAnswer(student, correct string) bool {
	studentParts := splitSelections(student)
	correctParts := splitSelections(correct)

	if len(studentParts) != len(correctParts) {
		return false
	}

	slices.Sort(studentParts)
	slices.Sort(correctParts)
	return slices.Equal(studentParts, correctParts)
}

func splitSelections(answer string) []string {
	var parts []string
	for _, part := range strings.Split(answer, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func isTFNG(answer string) bool {
	_, ok := tfngVocabulary[answer]
	return ok
}

func matchTFNG(student, correct string) bool {
	return canonicalTFNG(student) == canonicalTFNG(correct)
}

func canonicalTFNG(answer string) string {
	if canonical, ok := tfngCanonical[answer]; ok {
		return canonical
	}
	return answer
}
