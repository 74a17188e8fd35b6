package parser

import "testing"

func TestSplitFrontmatter(t *testing.T) {
	tests := map[string]struct {
		input      string
		wantFields int
		wantBody   string
		wantErr    bool
	}{
		"no frontmatter": {
			input:      "# Just a doc\n\nBody text.",
			wantFields: 0,
			wantBody:   "# Just a doc\n\nBody text.",
		},
		"yaml frontmatter": {
			input:      "---\ndescription: test rule\nalwaysApply: true\n---\nBody here.",
			wantFields: 2,
			wantBody:   "Body here.",
		},
		"toml frontmatter": {
			input:      "+++\ntitle = \"test\"\n+++\nBody here.",
			wantFields: 1,
			wantBody:   "Body here.",
		},
		"empty frontmatter block": {
			input:      "---\n---\nBody only.",
			wantFields: 0,
			wantBody:   "Body only.",
		},
		"unterminated block is all body": {
			input:      "---\ndescription: dangling",
			wantFields: 0,
			wantBody:   "---\ndescription: dangling",
		},
		"crlf line endings": {
			input:      "---\r\ndescription: windows\r\n---\r\nBody.",
			wantFields: 1,
			wantBody:   "Body.",
		},
		"crlf toml frontmatter": {
			input:      "+++\r\ntitle = \"test\"\r\n+++\r\nBody.\r\n",
			wantFields: 1,
			wantBody:   "Body.",
		},
		"crlf toml multiple keys": {
			input:      "+++\r\ntitle = \"test\"\r\ndraft = true\r\n+++\r\nBody.",
			wantFields: 2,
			wantBody:   "Body.",
		},
		"malformed yaml": {
			input:   "---\ndescription: [unclosed\nnot: valid: yaml: here\n---\nBody.",
			wantErr: true,
		},
		"delimiter mid-document is ignored": {
			input:      "First line.\n---\nnot: frontmatter\n---\n",
			wantFields: 0,
			wantBody:   "First line.\n---\nnot: frontmatter\n---",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fm, err := SplitFrontmatter([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SplitFrontmatter() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitFrontmatter() error = %v", err)
			}
			if fm.Fields == nil {
				t.Error("Fields = nil, want empty map")
			}
			if len(fm.Fields) != tt.wantFields {
				t.Errorf("len(Fields) = %d, want %d", len(fm.Fields), tt.wantFields)
			}
			if fm.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", fm.Body, tt.wantBody)
			}
		})
	}
}

func TestSequenceField(t *testing.T) {
	tests := map[string]struct {
		fields map[string]any
		want   []string
	}{
		"sequence of strings": {
			fields: map[string]any{"globs": []any{"*.go", "*.md"}},
			want:   []string{"*.go", "*.md"},
		},
		"scalar string coerces to nil": {
			fields: map[string]any{"globs": "*.go"},
			want:   nil,
		},
		"absent key": {
			fields: map[string]any{},
			want:   nil,
		},
		"mixed scalars stringified": {
			fields: map[string]any{"globs": []any{"a", 2}},
			want:   []string{"a", "2"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := sequenceField(tt.fields, "globs")
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("sequenceField() = %v, want %v", got, tt.want)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
