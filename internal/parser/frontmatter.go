// Package parser turns loosely structured markdown and frontmatter into the
// typed records of the model package. Every parser here is lenient: malformed
// input degrades to a documented fallback instead of failing the caller's batch.
package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the result of splitting a document into its leading
// metadata block and body.
type Frontmatter struct {
	// Fields is the parsed mapping; empty (never nil) when no block was found.
	Fields map[string]any
	// Body is the remaining text, trimmed.
	Body string
}

// SplitFrontmatter detects and parses a leading frontmatter block: a YAML
// mapping between `---` lines, or a TOML table between `+++` lines. When no
// block is present the whole input is body and Fields is empty. A block that
// is present but malformed is an error; callers fall back to a best-effort
// default and never propagate it.
func SplitFrontmatter(content []byte) (Frontmatter, error) {
	delim, ok := leadingDelimiter(content)
	if !ok {
		return Frontmatter{Fields: map[string]any{}, Body: strings.TrimSpace(string(content))}, nil
	}

	block, body, ok := splitOnDelimiter(content, delim)
	if !ok {
		// Opening delimiter with no closing one: treat the document as
		// having no frontmatter at all.
		return Frontmatter{Fields: map[string]any{}, Body: strings.TrimSpace(string(content))}, nil
	}

	fields := map[string]any{}
	if len(bytes.TrimSpace(block)) > 0 {
		var err error
		if delim == "+++" {
			err = toml.Unmarshal(block, &fields)
		} else {
			err = yaml.Unmarshal(block, &fields)
		}
		if err != nil {
			return Frontmatter{}, fmt.Errorf("parse frontmatter: %w", err)
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}
	return Frontmatter{Fields: fields, Body: strings.TrimSpace(string(body))}, nil
}

// leadingDelimiter reports which delimiter opens the document, if any.
func leadingDelimiter(content []byte) (string, bool) {
	for _, d := range []string{"---", "+++"} {
		if bytes.HasPrefix(content, []byte(d+"\n")) || bytes.HasPrefix(content, []byte(d+"\r\n")) {
			return d, true
		}
	}
	return "", false
}

// splitOnDelimiter separates the block between the opening delimiter line and
// the next line consisting of the same delimiter. Handles both \n and \r\n.
func splitOnDelimiter(content []byte, delim string) (block, body []byte, ok bool) {
	lines := bytes.Split(content, []byte("\n"))
	for i := 1; i < len(lines); i++ {
		if string(bytes.TrimRight(lines[i], "\r")) == delim {
			block = bytes.Join(lines[1:i], []byte("\n"))
			body = bytes.Join(lines[i+1:], []byte("\n"))
			// Splitting on \n leaves a \r on every CRLF line; the ReplaceAll
			// catches interior lines and the TrimRight the final one.
			block = bytes.ReplaceAll(block, []byte("\r\n"), []byte("\n"))
			block = bytes.TrimRight(block, "\r")
			return block, body, true
		}
	}
	return nil, nil, false
}

// stringField reads a string-typed field from a frontmatter mapping,
// returning "" when absent or differently typed.
func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// boolField reads a bool-typed field, returning false when absent or
// differently typed.
func boolField(fields map[string]any, key string) bool {
	v, _ := fields[key].(bool)
	return v
}

// sequenceField coerces a field to a string slice. Non-sequence values
// (including a lone string) coerce to nil, not to a one-element slice.
func sequenceField(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", item))
		}
	}
	return out
}
