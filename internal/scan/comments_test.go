package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gruntwork-io/tfdeps/internal/scan"
)

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "no comments",
			content:  "module \"vpc\" {\n  source = \"./vpc\"\n}\n",
			expected: "module \"vpc\" {\n  source = \"./vpc\"\n}\n",
		},
		{
			name:     "block comment on one line",
			content:  "a /* comment */ b",
			expected: "a  b",
		},
		{
			name:     "block comment spanning multiple lines",
			content:  "a\n/*\nline one\nline two\n*/\nb",
			expected: "a\n\nb",
		},
		{
			name:     "slash line comment",
			content:  "a // trailing\nb",
			expected: "a \nb",
		},
		{
			name:     "hash line comment",
			content:  "a # trailing\nb",
			expected: "a \nb",
		},
		{
			name:     "module block inside block comment is removed",
			content:  "/*\nmodule \"x\" {}\n*/\n",
			expected: "\n",
		},
		{
			name:     "multiple block comments are removed independently",
			content:  "a /* one */ b /* two */ c",
			expected: "a  b  c",
		},
		{
			name:     "empty content",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, scan.StripComments(tt.content))
		})
	}
}
