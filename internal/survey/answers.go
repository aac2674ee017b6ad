package survey

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Answer is a typed survey answer. The concrete type must line up with the
// question's declared Kind; the scorer treats a mismatch as unanswered.
type Answer interface {
	isAnswer()
}

// Number answers a Slider question.
type Number float64

// Choice answers a Select question.
type Choice string

// Choices answers a Multiselect question. Order is irrelevant; scoring uses
// set semantics.
type Choices []string

func (Number) isAnswer()  {}
func (Choice) isAnswer()  {}
func (Choices) isAnswer() {}

// AnswerSet maps question id to a typed answer. A user has at most one
// AnswerSet; re-submission replaces it wholesale.
type AnswerSet map[string]Answer

// answersSchema constrains the stored blob to an object of number, string, or
// string-array values. Individual violations mark that key rejected without
// failing the document.
var answersSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"additionalProperties": {
		"oneOf": [
			{"type": "number"},
			{"type": "string"},
			{"type": "array", "items": {"type": "string"}}
		]
	}
}`)

// ParseAnswerSet validates and coerces a stored answers blob into a typed
// AnswerSet. Keys that fail validation, are not declared questions, or do not
// match their question's declared kind are returned in rejected and treated
// as unanswered. An error is returned only when the blob as a whole is not a
// JSON object.
func ParseAnswerSet(raw []byte) (AnswerSet, []string, error) {
	result, err := gojsonschema.Validate(answersSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("validate answers blob: %w", err)
	}

	badKeys := map[string]bool{}
	for _, verr := range result.Errors() {
		field := verr.Field()
		if field == "(root)" {
			return nil, nil, fmt.Errorf("answers blob is not a JSON object: %s", verr.Description())
		}
		key, _, _ := strings.Cut(field, ".")
		badKeys[key] = true
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode answers blob: %w", err)
	}

	answers := make(AnswerSet, len(doc))
	var rejected []string

	for id, rawValue := range doc {
		if badKeys[id] {
			rejected = append(rejected, id)
			continue
		}
		question, ok := QuestionByID(id)
		if !ok {
			rejected = append(rejected, id)
			continue
		}
		answer, ok := coerceAnswer(question.Kind, rawValue)
		if !ok {
			rejected = append(rejected, id)
			continue
		}
		answers[id] = answer
	}

	return answers, rejected, nil
}

// coerceAnswer decodes a raw JSON value into the typed answer demanded by the
// question kind. A shape mismatch reports !ok rather than an error.
func coerceAnswer(kind Kind, raw json.RawMessage) (Answer, bool) {
	switch kind.(type) {
	case Slider:
		var v float64
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return Number(v), true
	case Select:
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return Choice(v), true
	case Multiselect:
		var v []string
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return Choices(v), true
	}
	return nil, false
}
