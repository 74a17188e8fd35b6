package model

// Command is a discovered command file. Content is the raw markdown; no
// frontmatter extraction happens for commands, and description synthesis is
// left to the consuming host.
type Command struct {
	Path     string   `json:"path"`
	FileName string   `json:"fileName"`
	Content  string   `json:"content"`
	Location Location `json:"location"`
}
