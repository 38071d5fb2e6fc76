package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RawAnswer is a student's submitted value for one question: either a single
// string or a list of strings (multi-select). The zero value is an unanswered
// question.
type RawAnswer struct {
	values   []string
	multiple bool
}

// Single wraps a single submitted value.
func Single(s string) RawAnswer {
	return RawAnswer{values: []string{s}}
}

// Multiple wraps a multi-select submission.
func Multiple(values ...string) RawAnswer {
	return RawAnswer{values: append([]string(nil), values...), multiple: true}
}

func (a RawAnswer) IsMultiple() bool {
	return a.multiple
}

func (a RawAnswer) Values() []string {
	return append([]string(nil), a.values...)
}

// String collapses the answer into its canonical comparison form: list
// elements are joined with "," and no extra spacing.
func (a RawAnswer) String() string {
	if a.multiple {
		return strings.Join(a.values, ",")
	}
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

func (a RawAnswer) MarshalJSON() ([]byte, error) {
	if a.multiple {
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a string, a list, null, or an object carrying the
// answer under "answer" or "student_answer". Other scalars and objects keep
// their compact JSON text so that they are still gradable.
func (a *RawAnswer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = RawAnswer{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Single(s)
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			var elem RawAnswer
			if err := elem.UnmarshalJSON(item); err != nil {
				return err
			}
			if elem.multiple {
				return fmt.Errorf("nested answer lists are not supported")
			}
			values = append(values, elem.String())
		}
		*a = Multiple(values...)
		return nil
	case '{':
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		for _, key := range []string{"answer", "student_answer"} {
			if inner, ok := wrapped[key]; ok {
				return a.UnmarshalJSON(inner)
			}
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return err
		}
		*a = Single(compact.String())
		return nil
	default:
		*a = Single(string(data))
		return nil
	}
}
