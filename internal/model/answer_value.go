package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedAnswers = errors.New("回答形式が不正です")

type answerKind int

const (
	answerBool answerKind = iota
	answerText
)

// AnswerValue is the closed union of values a respondent can give: a boolean
// for binary questions or a text label for single-choice questions. Structured
// JSON input collapses to its compact encoding as text at the parse boundary,
// so serialization happens in exactly one place.
type AnswerValue struct {
	kind answerKind
	b    bool
	s    string
}

func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{kind: answerBool, b: b}
}

func TextAnswer(s string) AnswerValue {
	return AnswerValue{kind: answerText, s: s}
}

func (v AnswerValue) IsBool() bool {
	return v.kind == answerBool
}

func (v AnswerValue) Bool() bool {
	return v.kind == answerBool && v.b
}

func (v AnswerValue) Text() string {
	return v.s
}

// Storage returns the persisted textual form: booleans as "1"/"0", text verbatim.
func (v AnswerValue) Storage() string {
	if v.kind == answerBool {
		if v.b {
			return "1"
		}
		return "0"
	}
	return v.s
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.kind == answerBool {
		return json.Marshal(v.b)
	}
	return json.Marshal(v.s)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrMalformedAnswers
	}
	switch {
	case bytes.Equal(trimmed, []byte("true")):
		*v = BoolAnswer(true)
	case bytes.Equal(trimmed, []byte("false")):
		*v = BoolAnswer(false)
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ErrMalformedAnswers
		}
		*v = TextAnswer(s)
	default:
		// Numbers, null and nested structures become stable compact text.
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return ErrMalformedAnswers
		}
		*v = TextAnswer(buf.String())
	}
	return nil
}

// AnswerRecord pairs a question key with the value given for it.
type AnswerRecord struct {
	QuestionID string
	Value      AnswerValue
}

// AnswerSet is the ordered answer sequence of one session. It round-trips as a
// JSON object whose key order is preserved, which a Go map cannot do.
type AnswerSet []AnswerRecord

// ParseAnswerSet decodes a JSON object into an AnswerSet, keeping the keys in
// wire order. Anything other than an object is malformed input.
func ParseAnswerSet(raw []byte) (AnswerSet, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, ErrMalformedAnswers
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrMalformedAnswers
	}

	var set AnswerSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, ErrMalformedAnswers
		}
		key, ok := keyTok.(string)
		if !ok || key == "" {
			return nil, ErrMalformedAnswers
		}

		var value AnswerValue
		if err := dec.Decode(&value); err != nil {
			return nil, ErrMalformedAnswers
		}
		set = append(set, AnswerRecord{QuestionID: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, ErrMalformedAnswers
	}
	return set, nil
}

func (s AnswerSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rec.QuestionID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(rec.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *AnswerSet) UnmarshalJSON(data []byte) error {
	parsed, err := ParseAnswerSet(data)
	if err != nil {
		return fmt.Errorf("answer set: %w", err)
	}
	*s = parsed
	return nil
}
