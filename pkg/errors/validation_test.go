package errors

import (
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "views", false},
		{"with dash", "ctools-plus", false},
		{"with underscore", "field_group", false},
		{"empty", "", true},
		{"parent traversal", "../secrets", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"control character", "a\nb", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidProject) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidProject)
			}
		})
	}
}
