package model

import "testing"

func TestParseLocation(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Location
		wantErr bool
	}{
		"workspace":           {input: "workspace", want: LocationWorkspace},
		"project alias":       {input: "project", want: LocationWorkspace},
		"local alias":         {input: "local", want: LocationWorkspace},
		"global":              {input: "global", want: LocationGlobal},
		"user alias":          {input: "user", want: LocationGlobal},
		"home alias":          {input: "home", want: LocationGlobal},
		"case insensitive":    {input: "WORKSPACE", want: LocationWorkspace},
		"surrounding spaces":  {input: "  global  ", want: LocationGlobal},
		"unknown":             {input: "remote", wantErr: true},
		"empty":               {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLocation(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLocation(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocation(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocationIsValid(t *testing.T) {
	if !LocationWorkspace.IsValid() || !LocationGlobal.IsValid() {
		t.Error("canonical locations should be valid")
	}
	if Location("remote").IsValid() {
		t.Error("unknown location should not be valid")
	}
}
