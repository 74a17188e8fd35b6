package model

// SkillGuidance is the nested guidance block of a skill's frontmatter.
type SkillGuidance struct {
	Role        string   `json:"role,omitempty" yaml:"role"`
	Instruction string   `json:"instruction,omitempty" yaml:"instruction"`
	Context     string   `json:"context,omitempty" yaml:"context"`
	Examples    []string `json:"examples,omitempty" yaml:"examples"`
	Constraints []string `json:"constraints,omitempty" yaml:"constraints"`
	Output      string   `json:"output,omitempty" yaml:"output"`
}

// SkillMetadata holds the structured fields of a skill. The sequence fields
// stay nil unless the source value really was a sequence.
type SkillMetadata struct {
	Title         string         `json:"title,omitempty"`
	Overview      string         `json:"overview,omitempty"`
	Prerequisites []string       `json:"prerequisites,omitempty"`
	Steps         []string       `json:"steps,omitempty"`
	Tools         []string       `json:"tools,omitempty"`
	Guidance      *SkillGuidance `json:"guidance,omitempty"`
}

// Skill is a discovered SKILL.md artifact. Metadata is nil when neither a
// frontmatter block nor a level-1 heading was found; a nil Metadata is
// distinct from an empty one.
type Skill struct {
	Path     string         `json:"path"`
	FileName string         `json:"fileName"`
	Content  string         `json:"content"`
	Location Location       `json:"location"`
	Metadata *SkillMetadata `json:"metadata,omitempty"`
}
