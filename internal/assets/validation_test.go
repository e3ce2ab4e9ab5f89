package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "elegant", nil},
		{"name with hyphen", "my-template", nil},
		{"name with underscore", "my_template", nil},
		{"name with numbers", "template123", nil},
		{"mixed case", "MyTemplate", nil},
		{"empty name", "", ErrInvalidAssetName},
		{"forward slash", "a/b", ErrInvalidAssetName},
		{"backslash", `a\b`, ErrInvalidAssetName},
		{"parent traversal", "..", ErrInvalidAssetName},
		{"extension", "a.yaml", ErrInvalidAssetName},
		{"absolute path", "/etc/passwd", ErrInvalidAssetName},
		{"null byte", "a\x00b", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateAssetName(%q) error = %v, want nil", tt.input, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
