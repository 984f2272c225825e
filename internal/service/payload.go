package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// cleanJSON strips a markdown code fence some models wrap JSON in.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// decodePayload checks raw model output against schema and decodes it into
// out. Every failure wraps ErrAdvisory.
func decodePayload(raw string, schema *genai.Schema, out any) error {
	cleaned := cleanJSON(raw)
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", ErrAdvisory)
	}
	if !gjson.Valid(cleaned) {
		return fmt.Errorf("%w: response is not valid JSON", ErrAdvisory)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(jsonSchema(schema)),
		gojsonschema.NewStringLoader(cleaned),
	)
	if err != nil {
		return fmt.Errorf("%w: schema check: %v", ErrAdvisory, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: response violates schema: %s", ErrAdvisory, strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrAdvisory, err)
	}
	return nil
}
