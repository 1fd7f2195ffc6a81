package intelligence

import (
	"encoding/json"
	"strings"

	"mindwell/models"
)

// The model is asked for a JSON object but free models routinely wrap it in
// prose or markdown fences. Parsing is an ordered pipeline of strategies;
// the last one synthesizes a reply from the raw text and always succeeds,
// so ParseResponse never returns a reply without a usable Response string.
type parseStrategy func(text string) *models.AIResponse

var parsePipeline = []parseStrategy{
	parseWholeJSON,
	parseEmbeddedJSON,
	synthesizeFromText,
}

// ParseResponse runs the strategy pipeline and returns the first success.
func ParseResponse(text string) models.AIResponse {
	for _, strategy := range parsePipeline {
		if resp := strategy(text); resp != nil {
			return *resp
		}
	}
	// Unreachable: synthesizeFromText never returns nil.
	return *synthesizeFromText(text)
}

// parseWholeJSON accepts the reply only when the entire text is a JSON
// object carrying a string "response" field.
func parseWholeJSON(text string) *models.AIResponse {
	return decodeResponse(text)
}

// parseEmbeddedJSON extracts the substring from the first '{' to the last
// '}' and tries that.
func parseEmbeddedJSON(text string) *models.AIResponse {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil
	}
	return decodeResponse(text[start : end+1])
}

// synthesizeFromText wraps the raw text in a supportive reply. Confidence
// is 0.7 when the text at least contained a JSON-looking fragment, 0.5
// otherwise.
func synthesizeFromText(text string) *models.AIResponse {
	trimmed := strings.TrimSpace(text)
	confidence := 0.5
	if strings.Contains(trimmed, "{") && strings.Contains(trimmed, "}") {
		confidence = 0.7
	}
	if trimmed == "" {
		trimmed = "I'm here to listen. Could you tell me more about how you're feeling?"
	}
	return &models.AIResponse{
		Response:           trimmed,
		ResponseType:       "supportive",
		EmotionalTone:      "empathetic",
		ConfidenceScore:    confidence,
		EscalationRequired: false,
	}
}

// decodeResponse unmarshals candidate JSON and validates the shape: the
// "response" field must exist and be a non-empty string.
func decodeResponse(candidate string) *models.AIResponse {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return nil
	}
	raw, ok := probe["response"]
	if !ok {
		return nil
	}
	var response string
	if err := json.Unmarshal(raw, &response); err != nil || response == "" {
		return nil
	}

	var resp models.AIResponse
	if err := json.Unmarshal([]byte(candidate), &resp); err != nil {
		return nil
	}
	return &resp
}
