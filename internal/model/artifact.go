package model

// Section is a heading's line span. StartLine and EndLine are inclusive,
// zero-based line indices; the parser guarantees sections partition the
// document's line range with no gaps and no overlaps.
type Section struct {
	Level     int    `json:"level"`
	Title     string `json:"title"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

// TechStackInfo is the bullet-extracted technology summary of a project doc.
// Each field is extracted independently, so any of them may be empty.
type TechStackInfo struct {
	Languages      []string `json:"languages,omitempty"`
	Frameworks     []string `json:"frameworks,omitempty"`
	BuildTools     []string `json:"buildTools,omitempty"`
	Testing        []string `json:"testing,omitempty"`
	PackageManager string   `json:"packageManager,omitempty"`
}

// OperationalBoundaries holds the three tiers of boundary bullets. A tier
// whose heading is missing, or present with no matching bullets, is an
// empty slice in both cases.
type OperationalBoundaries struct {
	Tier1Always []string `json:"tier1Always"`
	Tier2Ask    []string `json:"tier2Ask"`
	Tier3Never  []string `json:"tier3Never"`
}

// ProjectDoc is the parsed AGENTS.md-style project documentation artifact.
type ProjectDoc struct {
	Exists         bool                   `json:"exists"`
	Path           string                 `json:"path,omitempty"`
	Content        string                 `json:"content,omitempty"`
	Mission        string                 `json:"mission,omitempty"`
	CorePhilosophy string                 `json:"corePhilosophy,omitempty"`
	Sections       []Section              `json:"sections,omitempty"`
	TechStack      *TechStackInfo         `json:"techStack,omitempty"`
	Boundaries     *OperationalBoundaries `json:"operationalBoundaries,omitempty"`
}

// SpecEntry is one recognized spec subdirectory under the specs root.
type SpecEntry struct {
	// Domain is the containing directory's name.
	Domain       string  `json:"domain"`
	Path         string  `json:"path"`
	HasBlueprint bool    `json:"hasBlueprint"`
	HasContract  bool    `json:"hasContract"`
	// LastModified is an ISO-8601 timestamp, nil when the backend reports none.
	LastModified *string `json:"lastModified,omitempty"`
}

// SchemaEntry is one JSON schema file under the schemas root.
type SchemaEntry struct {
	// Name is the filename without its extension.
	Name     string `json:"name"`
	Path     string `json:"path"`
	SchemaID string `json:"schemaId,omitempty"`
}

// SpecList is the specs/ portion of an artifact bundle.
type SpecList struct {
	Exists  bool        `json:"exists"`
	Path    string      `json:"path,omitempty"`
	Entries []SpecEntry `json:"entries"`
}

// SchemaList is the schemas/ portion of an artifact bundle.
type SchemaList struct {
	Exists  bool          `json:"exists"`
	Path    string        `json:"path,omitempty"`
	Entries []SchemaEntry `json:"entries"`
}

// ArtifactBundle aggregates the three project artifact categories. It is
// built once per scan and never mutated afterwards.
type ArtifactBundle struct {
	Doc     ProjectDoc `json:"projectDoc"`
	Specs   SpecList   `json:"specs"`
	Schemas SchemaList `json:"schemas"`
	// HasAnyArtifact is the OR of the three existence flags.
	HasAnyArtifact bool `json:"hasAnyArtifact"`
}
