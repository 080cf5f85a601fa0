package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// conversationSchema is the JSON Schema every generated record must
// satisfy before it is written out.
const conversationSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": [
		"id", "personas", "additional_context", "context",
		"previous_utterance", "free_messages", "guided_messages",
		"suggestions", "guided_chosen_suggestions", "label_candidates"
	],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"personas": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 1
		},
		"additional_context": {"type": "string", "minLength": 1},
		"context": {
			"enum": ["financial_advice", "banking_basics", "investment_knowledge", "financial_literacy"]
		},
		"previous_utterance": {
			"type": "array",
			"items": {"type": "string"}
		},
		"free_messages": {
			"type": "array",
			"items": {"type": "string", "minLength": 1},
			"minItems": 1
		},
		"guided_messages": {
			"type": "array",
			"items": {"type": "string", "minLength": 1},
			"minItems": 1
		},
		"suggestions": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "string"}
			}
		},
		"guided_chosen_suggestions": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 3,
			"maxItems": 3
		},
		"label_candidates": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

var schema = jsonschema.MustCompileString("conversation.schema.json", conversationSchema)

// Validate checks a conversation against the record schema.
func Validate(conv Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation %s: %w", conv.ID, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode conversation %s: %w", conv.ID, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("conversation %s failed validation: %w", conv.ID, err)
	}
	return nil
}
