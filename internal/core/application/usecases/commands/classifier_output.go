package commands

import (
	"encoding/json"
	"strings"

	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services/intents"
)

// classifierOutput is the JSON document the classifier is instructed to
// produce. Models wrap it in prose or code fences often enough that the
// extraction below never trusts the reply to be bare JSON.
type classifierOutput struct {
	Intent   string           `json:"intent"`
	Entities intents.Entities `json:"entities"`
	Reply    string           `json:"reply"`
}

// ParsedTurn is the classification of one utterance.
type ParsedTurn struct {
	Intent   flow.Intent
	Entities intents.Entities
	Reply    string
}

// ParseClassifierOutput extracts and decodes the classification JSON from
// the model's raw reply. The boolean is false when no decodable JSON
// object is present; the caller degrades to the ASK_INFO fallback.
func ParseClassifierOutput(raw string) (ParsedTurn, bool) {
	object, ok := ExtractJSONObject(raw)
	if !ok {
		return ParsedTurn{}, false
	}

	var output classifierOutput
	if err := json.Unmarshal([]byte(object), &output); err != nil {
		return ParsedTurn{}, false
	}
	if output.Intent == "" {
		return ParsedTurn{}, false
	}

	return ParsedTurn{
		Intent:   flow.ParseIntent(output.Intent),
		Entities: output.Entities,
		Reply:    output.Reply,
	}, true
}

// ExtractJSONObject returns the first balanced JSON object in s. The scan
// counts braces outside of string literals, honoring backslash escapes, so
// braces inside quoted values do not terminate the object early. Code
// fences and surrounding prose are skipped naturally because scanning
// starts at the first '{'.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
