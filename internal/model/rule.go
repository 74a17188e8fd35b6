package model

// Sentinel values substituted when a single entry cannot be read or parsed.
// Batch scans degrade the one entry to these strings and keep going, and the
// hosts render them as visibly failed rows. Consumers pattern-match the exact
// strings, so they are part of the contract.
const (
	// NoDescription is the description for a rule whose frontmatter carries none.
	NoDescription = "No description"
	// ErrParsingFile is the description for a rule whose frontmatter failed to parse.
	ErrParsingFile = "Error parsing file"
	// ErrReadingContent is the content for any artifact whose file could not be read.
	ErrReadingContent = "Error reading file content"
)

// RuleMetadata is the structured head of a rule file.
type RuleMetadata struct {
	// Description is never empty: extraction substitutes NoDescription or
	// ErrParsingFile so consumers never branch on a missing value.
	Description string   `json:"description"`
	Globs       []string `json:"globs,omitempty"`
	AlwaysApply bool     `json:"alwaysApply,omitempty"`
}

// Rule is a discovered rule file with its frontmatter split out.
type Rule struct {
	Path     string       `json:"path"`
	FileName string       `json:"fileName"`
	Content  string       `json:"content"`
	Metadata RuleMetadata `json:"metadata"`
}
