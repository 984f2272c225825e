package service

import (
	"testing"

	"google.golang.org/genai"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `{"a":1}`, want: `{"a":1}`},
		{in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{in: "```\n[1,2]\n```", want: `[1,2]`},
		{in: "  \n{\"a\":1}  ", want: `{"a":1}`},
	}
	for _, tt := range tests {
		if got := cleanJSON(tt.in); got != tt.want {
			t.Fatalf("cleanJSON(%q): got=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestJSONSchemaConversion(t *testing.T) {
	got := jsonSchema(interviewQuestionsSchema)
	if got["type"] != "array" {
		t.Fatalf("type: got=%v want=array", got["type"])
	}
	if got["maxItems"] != int64(12) {
		t.Fatalf("maxItems: got=%v want=12", got["maxItems"])
	}
	items := got["items"].(map[string]any)
	props := items["properties"].(map[string]any)
	difficulty := props["difficulty"].(map[string]any)
	enum := difficulty["enum"].([]string)
	if len(enum) != 3 || enum[2] != "Hard" {
		t.Fatalf("difficulty enum: got=%v", enum)
	}

	score := jsonSchema(&genai.Schema{Type: genai.TypeNumber, Minimum: genai.Ptr(0.0), Maximum: genai.Ptr(100.0)})
	if score["minimum"] != 0.0 || score["maximum"] != 100.0 {
		t.Fatalf("bounds: got=%v", score)
	}
}
