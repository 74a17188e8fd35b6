package parser

import "encoding/json"

// ExtractSchemaID parses the input as JSON and returns its "$id" field,
// falling back to "id". Returns "" for invalid JSON or when neither key holds
// a string; this extraction never fails.
func ExtractSchemaID(content []byte) string {
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return ""
	}
	if id, ok := doc["$id"].(string); ok {
		return id
	}
	if id, ok := doc["id"].(string); ok {
		return id
	}
	return ""
}
