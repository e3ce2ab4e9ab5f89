package pipeline

import (
	"context"
	"testing"
)

func TestBulletPreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bullets", "• one\n• two", "- one\n- two"},
		{"middle dot", "· item", "- item"},
		{"indented", "  • nested", "  - nested"},
		{"crlf", "• a\r\n• b\r\n", "- a\n- b\n"},
		{"lone cr", "a\rb", "a\nb"},
		{"bullet mid-line kept", "a • b", "a • b"},
		{"plain text", "no bullets here", "no bullets here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BulletPreprocessor{}.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.expected {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBulletPreprocessor_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "• a\r\n"
	if got := (BulletPreprocessor{}).PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("cancelled preprocess should return input unchanged, got %q", got)
	}
}

func TestPassthroughPreprocessor(t *testing.T) {
	t.Parallel()

	input := "• a\r\n"
	if got := (PassthroughPreprocessor{}).PreprocessMarkdown(context.Background(), input); got != input {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got)
	}
}
